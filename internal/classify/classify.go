// Package classify tags opportunities with a project type so unsuitable
// kinds of work (mobile-only, pure consulting, admin jobs) can be screened
// before any scoring effort is spent on them.
package classify

import (
	"fmt"
	"strings"
)

type ProjectType string

const (
	TypeWebapp     ProjectType = "webapp"
	TypeAPI        ProjectType = "api"
	TypeMobile     ProjectType = "mobile"
	TypeDevOps     ProjectType = "devops"
	TypeData       ProjectType = "data"
	TypeLegacy     ProjectType = "legacy"
	TypeAdmin      ProjectType = "admin"
	TypeConsulting ProjectType = "consulting"
	TypeOther      ProjectType = "other"
)

// typeOrder fixes the tie-break: on equal term counts the earlier type wins.
var typeOrder = []ProjectType{
	TypeWebapp, TypeAPI, TypeMobile, TypeDevOps, TypeData,
	TypeLegacy, TypeAdmin, TypeConsulting,
}

// Terms are matched by substring containment, not word boundaries: the
// lists are built from multi-word phrases and compound-friendly German
// vocabulary where containment is the wanted behavior.
var typeTerms = map[ProjectType][]string{
	TypeWebapp: {
		"webanwendung", "webapp", "web-app", "webapplikation",
		"portal", "webportal", "web-portal", "plattform",
		"frontend", "front-end", "spa", "single page",
		"dashboard", "admin panel", "cms", "website",
		"responsive", "progressive web", "pwa",
		"vue", "react", "angular", "nuxt", "next.js",
	},
	TypeAPI: {
		"api", "rest", "graphql", "backend", "back-end",
		"microservice", "microservices", "schnittstelle",
		"webservice", "web-service", "endpoint",
		"serverless", "lambda", "api gateway",
		"python backend", "node backend", "java backend",
	},
	TypeMobile: {
		"ios", "android", "mobile app", "mobile-app",
		"smartphone", "tablet", "app-entwicklung",
		"flutter", "react native", "ionic", "xamarin",
		"swift", "kotlin mobile", "objective-c",
	},
	TypeDevOps: {
		"devops", "ci/cd", "cicd", "pipeline",
		"kubernetes", "k8s", "docker", "terraform",
		"ansible", "jenkins", "gitlab ci", "github actions",
		"infrastructure", "cloud engineer", "site reliability",
		"monitoring", "prometheus", "grafana",
	},
	TypeData: {
		"datenbank", "database", "etl", "data warehouse",
		"analytics", "bi", "business intelligence",
		"data engineer", "data science", "machine learning",
		"big data", "hadoop", "spark", "databricks",
		"powerbi", "tableau", "reporting",
	},
	TypeLegacy: {
		"migration", "modernisierung", "ablösung",
		"refactoring", "legacy", "altanwendung",
		"systemablösung", "technologiewechsel",
		"cobol migration", "mainframe migration",
	},
	TypeAdmin: {
		"administrator", "admin", "support",
		"helpdesk", "service desk", "1st level", "2nd level",
		"wartung", "maintenance", "betrieb",
		"netzwerk", "firewall", "cisco",
	},
	TypeConsulting: {
		"berater", "consultant", "beratung", "consulting",
		"requirements", "anforderungsanalyse", "konzeption",
		"projektmanagement", "project manager", "scrum master",
	},
}

var preferredTypes = map[ProjectType]bool{
	TypeWebapp: true,
	TypeAPI:    true,
	TypeData:   true,
}

var avoidTypes = map[ProjectType]bool{
	TypeMobile:     true,
	TypeDevOps:     true,
	TypeAdmin:      true,
	TypeConsulting: true,
}

// Breakdown carries the full classification result: the winning type, the
// per-type term counts and the deduplicated matched terms.
type Breakdown struct {
	Primary ProjectType
	Scores  map[ProjectType]int
	Matched []string
}

// Classify tags an opportunity with its most likely project type. The type
// with the most term hits wins; ties resolve in typeOrder and no hit at all
// yields TypeOther.
func Classify(title, description string) ProjectType {
	return ClassifyDetailed(title, description).Primary
}

// ClassifyDetailed classifies and reports the per-type counts alongside.
func ClassifyDetailed(title, description string) Breakdown {
	text := strings.ToLower(title + " " + description)

	b := Breakdown{
		Primary: TypeOther,
		Scores:  make(map[ProjectType]int, len(typeOrder)),
	}
	seen := make(map[string]bool)

	for _, ptype := range typeOrder {
		count := 0
		for _, term := range typeTerms[ptype] {
			if strings.Contains(text, term) {
				count++
				if !seen[term] {
					seen[term] = true
					b.Matched = append(b.Matched, term)
				}
			}
		}
		b.Scores[ptype] = count
	}

	best := 0
	for _, ptype := range typeOrder {
		if b.Scores[ptype] > best {
			best = b.Scores[ptype]
			b.Primary = ptype
		}
	}
	return b
}

// IsPreferred reports whether the type fits the team profile.
func IsPreferred(t ProjectType) bool {
	return preferredTypes[t]
}

// ShouldAvoid reports whether the type is a poor fit for the team profile.
func ShouldAvoid(t ProjectType) bool {
	return avoidTypes[t]
}

// Recommendation returns the operator-facing assessment for a type.
func Recommendation(t ProjectType) string {
	switch {
	case preferredTypes[t]:
		return fmt.Sprintf("Projekttyp '%s' passt gut zum Team-Profil", t)
	case avoidTypes[t]:
		return fmt.Sprintf("Projekttyp '%s' passt nicht zum Team-Profil", t)
	default:
		return fmt.Sprintf("Projekttyp '%s' - Einzelfallprüfung empfohlen", t)
	}
}
