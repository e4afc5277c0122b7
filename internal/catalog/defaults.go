package catalog

// The built-in tables encode the delivery team's profile: Vue/Nuxt on the
// frontend, Python, .NET and Java on the backend. Tier 1 carries the core
// competencies, tier 2 the strong-fit ecosystem, tier 3 nice-to-have
// tooling. Reject terms are weighted by severity; 150-weight industry terms
// disqualify on a single hit, lighter ones only in combination.

// DefaultLimits returns the stock scoring knobs: keyword points make up at
// most 40 of a 100-point verdict.
func DefaultLimits() Limits {
	return Limits{
		Tier1Unit:       18,
		Tier1Cap:        32,
		Tier2Unit:       10,
		Tier2Cap:        17,
		Tier3Unit:       5,
		Tier3Cap:        12,
		ScoreMax:        40,
		ComboMax:        11,
		RejectThreshold: 100,
	}
}

// Default builds the catalog from the built-in tables. The tables are
// compile-time constants, so a validation failure here is a programming
// error and panics.
func Default() *Catalog {
	c, err := New(defaultEntries(), defaultCombos(), defaultAllowTerms(), DefaultLimits())
	if err != nil {
		panic("catalog: built-in tables invalid: " + err.Error())
	}
	return c
}

var tier1Terms = []string{
	// Frontend core
	"vue", "vue.js", "vuejs", "nuxt", "nuxtjs",
	// Python backend
	"python", "django", "fastapi",
	// .NET backend
	"c#", ".net", "dotnet", "asp.net", "blazor",
	// Java backend
	"java", "spring", "spring boot", "springboot",
	// Roles
	"fullstack", "full-stack", "backend", "frontend",
}

var tier2Terms = []string{
	"react", "angular", "typescript", "javascript", "front-end",
	"html", "css", "scss", "sass", "tailwind", "bootstrap", "webpack", "vite",
	"next.js", "nextjs", "ui", "ux", "ui/ux",
	"node", "nodejs", "node.js", "express", "nestjs", "flask",
	// .NET ecosystem
	"entity framework", "ef core", "ms sql", "mssql", "sql server",
	"wpf", "winforms", ".net core", "maui",
	// Java ecosystem
	"kotlin", "jpa", "hibernate", "maven", "gradle",
	// Databases
	"postgresql", "mongodb", "redis",
	// APIs
	"rest", "graphql", "api", "microservice", "microservices",
	// Auth and compliance
	"jwt", "oauth", "oauth2", "authentifizierung", "autorisierung",
	"dsgvo", "datenschutz", "gdpr",
	// Cloud and deployment
	"docker", "aws", "azure", "kubernetes",
	"terraform", "ansible", "helm", "argocd", "github actions", "azure devops",
	"bitbucket", "vercel", "netlify", "heroku", "gcp", "google cloud",
	// Vue libraries
	"vuex", "pinia", "vue router", "vuetify", "quasar",
	// React libraries
	"redux", "zustand", "react query", "mobx",
	// .NET libraries
	"automapper", "dapper", "serilog", "mediatr", "fluentvalidation",
	"xunit", "nunit",
	// Java libraries
	"lombok", "junit", "mockito",
}

var tier3Terms = []string{
	"agile", "scrum", "devops", "ci/cd", "cicd", "git",
	"responsive", "spa", "pwa", "webentwicklung",
	"mysql", "elasticsearch", "rabbitmq", "kafka", "linux", "jenkins", "gitlab",
	// Frontend tooling
	"figma", "storybook", "jest", "cypress", "playwright",
	"less", "styled-components", "material-ui", "mui", "svelte", "web components",
	// General libraries
	"axios", "lodash", "swagger", "openapi",
}

func defaultEntries() []Entry {
	out := make([]Entry, 0, len(tier1Terms)+len(tier2Terms)+len(tier3Terms)+96)
	for _, t := range tier1Terms {
		out = append(out, Entry{Term: t, Tier: Tier1})
	}
	for _, t := range tier2Terms {
		out = append(out, Entry{Term: t, Tier: Tier2})
	}
	for _, t := range tier3Terms {
		out = append(out, Entry{Term: t, Tier: Tier3})
	}
	return append(out, defaultRejectEntries()...)
}

func defaultRejectEntries() []Entry {
	var out []Entry
	add := func(cat Category, weight int, early bool, terms ...string) {
		for _, t := range terms {
			out = append(out, Entry{Term: t, Tier: TierReject, Category: cat, Weight: weight, EarlyReject: early})
		}
	}

	// Legacy platforms
	add(CategoryLegacy, 100, true, "sap", "abap", "cobol", "mainframe", "as400")

	// Enterprise platforms
	add(CategoryEnterprise, 100, true,
		"sharepoint", "dynamics 365", "salesforce",
		"salesforce administrator", "salesforce entwickler")
	add(CategoryEnterprise, 100, false, "dynamics")

	// CMS work
	add(CategoryCMS, 50, true,
		"php", "php entwickler", "wordpress", "wordpress entwickler",
		"wordpress admin", "drupal", "joomla", "typo3")

	// Admin and support roles. The bare terms stay soft: "support" or
	// "admin" alone also shows up in legitimate development postings.
	add(CategoryAdmin, 30, true,
		"helpdesk", "support techniker", "1st level", "2nd level",
		"systemadministrator", "netzwerkadministrator")
	add(CategoryAdmin, 30, false, "support", "admin", "netzwerk", "firewall", "cisco")

	// Mobile-only work
	add(CategoryMobile, 50, true,
		"ios entwickler", "ios developer", "ios app",
		"android entwickler", "android developer", "android app",
		"mobile app entwickler", "flutter entwickler", "react native entwickler")

	// Hardware and embedded
	add(CategoryHardware, 30, false, "hardware")
	add(CategoryHardware, 40, true,
		"hardwareentwicklung", "embedded entwickler", "sps programmierer",
		"roboterprogrammierung")
	add(CategoryHardware, 40, false,
		"embedded", "sps", "roboter", "maschinenbau", "elektrotechnik")

	// Non-IT trades from tender portals. A single hit exceeds the reject
	// threshold; the early screen handles them separately because they need
	// the software-context check first.
	add(CategoryIndustry, 150, false,
		// Construction
		"bauarbeiten", "bauleistungen", "hochbau", "tiefbau", "rohbau",
		"straßenbau", "brückenbau", "kanalbau", "betonarbeiten", "mauerarbeiten",
		"dacharbeiten", "estricharbeiten", "putzarbeiten", "fliesenarbeiten",
		"trockenbau", "gerüstbau", "abbrucharbeiten",
		// Electrical installation
		"elektroinstallation", "starkstrom", "elektroanlagen", "schaltanlagen",
		"niederspannung", "mittelspannung", "hochspannung",
		// Metalwork
		"metallbau", "stahlbau", "schweißarbeiten", "rohrleitungsbau", "schlosserei",
		// HVAC
		"heizungsanlage", "lüftungsanlage", "klimaanlage", "sanitärinstallation",
		"kältetechnik",
		// Facility services
		"gebäudereinigung", "unterhaltsreinigung", "winterdienst", "grünflächenpflege",
		// Physical security
		"wachdienst", "objektschutz", "sicherheitsdienst", "pförtnerdienst",
		// Print and office supplies
		"druckerzeugnisse", "drucksachen", "büromöbel", "arbeitskleidung")

	return out
}

func defaultCombos() []Combo {
	combo := func(bonus int, members ...string) Combo {
		return Combo{Members: members, Bonus: bonus}
	}
	return []Combo{
		// Fullstack pairings around the core stack
		combo(8, "vue", "python"),
		combo(8, "vue", "django"),
		combo(8, "vue", "c#"),
		combo(8, "vue", ".net"),
		combo(6, "react", "python"),
		combo(6, "react", "node"),
		combo(6, "angular", "java"),
		combo(6, "angular", "spring"),
		// Backend stacks
		combo(5, "python", "postgresql"),
		combo(6, "java", "spring"),
		combo(6, "c#", "asp.net"),
		combo(5, ".net", "sql server"),
		// Typed frontend
		combo(5, "vue", "typescript"),
		combo(5, "react", "typescript"),
		// Cloud
		combo(4, "docker", "kubernetes"),
		combo(3, "python", "docker"),
		combo(3, "java", "docker"),
		// APIs
		combo(5, "graphql", "vue"),
		combo(5, "graphql", "react"),
		combo(3, "rest", "python"),
	}
}

func defaultAllowTerms() []string {
	return []string{
		// Roles
		"fullstack", "full-stack", "backend", "frontend", "api",
		"webentwicklung", "softwareentwicklung", "it-beratung",
		"entwickler", "developer", "engineer",
		// Technologies
		"python", "java", "javascript", "typescript", "vue", "react", "angular",
		"c#", ".net", "django", "spring", "node", "nodejs",
		"fastapi", "flask", "express", "nestjs",
		// Project shapes
		"webanwendung", "webapp", "portal", "plattform", "saas",
		"digitalisierung", "e-government", "ozg",
		"webapplikation", "webportal", "online-plattform",
		// General IT
		"it-projekt", "it-system", "fachverfahren", "fachanwendung",
		"schnittstelle", "datenbank", "cloud", "microservice", "microservices",
		"docker", "kubernetes", "aws", "azure",
		// Integration
		"rest", "graphql", "restful", "api-entwicklung",
		// Databases
		"postgresql", "mongodb", "mysql", "redis",
	}
}
