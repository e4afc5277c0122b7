// Package skills normalizes free-form skill strings and computes the
// overlap between the technologies an opportunity asks for and the skills
// a candidate or team brings.
package skills

import (
	"regexp"
	"sort"
	"strings"
)

// aliases maps spelling variants to one canonical form. Lookups happen
// after lower-casing and trimming; a second lookup runs with a trailing
// version number stripped, so "Python 3" and "python3" both land on
// "python".
var aliases = map[string]string{
	// Vue
	"vue.js": "vue",
	"vuejs":  "vue",
	"vue 3":  "vue",
	"vue3":   "vue",
	"vue js": "vue",
	"vue 2":  "vue",
	// React
	"reactjs":  "react",
	"react.js": "react",
	"react 18": "react",
	"react js": "react",
	"react 17": "react",
	// Node
	"node.js": "node",
	"nodejs":  "node",
	// Python
	"python3":          "python",
	"python 3":         "python",
	"python 3.11":      "python",
	"python developer": "python",
	"python entwickler": "python",
	// Java
	"java developer":  "java",
	"java entwickler": "java",
	// C# and .NET
	"c# entwickler":    "c#",
	"c# developer":     "c#",
	".net entwickler":  "c#",
	".net developer":   "c#",
	"dotnet":           "c#",
	"entity framework": "c#",
	"asp.net":          "c#",
	// TypeScript
	"ts": "typescript",
	// JavaScript
	"js":         "javascript",
	"es6":        "javascript",
	"ecmascript": "javascript",
	// PostgreSQL
	"postgres":             "postgresql",
	"psql":                 "postgresql",
	"postgresql datenbank": "postgresql",
	"postgres datenbank":   "postgresql",
	// SQL
	"ms sql":          "sql",
	"mssql":           "sql",
	"sql server":      "sql",
	"t-sql":           "sql",
	"mysql datenbank": "mysql",
	// Docker
	"docker-compose": "docker",
	"docker compose": "docker",
	// Kubernetes
	"k8s": "kubernetes",
	// REST
	"rest-api": "rest",
	"restful":  "rest",
	"rest api": "rest",
	// GraphQL
	"graphql api": "graphql",
	// Git
	"github": "git",
	"gitlab": "git",
	// Clouds
	"amazon web services": "aws",
	"microsoft azure":     "azure",
	// CI/CD
	"ci/cd":                  "cicd",
	"ci cd":                  "cicd",
	"continuous integration": "cicd",
	// Fullstack
	"full-stack": "fullstack",
	"full stack": "fullstack",
}

// hierarchy maps umbrella role terms found in posting texts to the
// concrete skills they imply.
var hierarchy = map[string][]string{
	// German, frontend
	"frontend-entwickler":  {"vue", "react", "angular", "javascript", "typescript"},
	"frontend entwickler":  {"vue", "react", "angular", "javascript", "typescript"},
	"frontend-entwicklung": {"vue", "react", "angular", "javascript", "typescript"},
	"frontendentwicklung":  {"vue", "react", "angular", "javascript", "typescript"},
	"ui-entwickler":        {"vue", "react", "javascript", "css"},
	"ui entwickler":        {"vue", "react", "javascript", "css"},
	"ui-entwicklung":       {"vue", "react", "javascript", "css"},
	// German, backend
	"backend-entwickler":  {"python", "java", "c#", "node", "django", "fastapi", "spring"},
	"backend entwickler":  {"python", "java", "c#", "node", "django", "fastapi", "spring"},
	"backend-entwicklung": {"python", "java", "c#", "node", "django", "fastapi", "spring"},
	"backendentwicklung":  {"python", "java", "c#", "node", "django", "fastapi", "spring"},
	// German, fullstack
	"fullstack-entwickler":  {"vue", "react", "python", "java", "node", "postgresql"},
	"fullstack entwickler":  {"vue", "react", "python", "java", "node", "postgresql"},
	"full-stack-entwickler": {"vue", "react", "python", "java", "node", "postgresql"},
	"fullstackentwickler":   {"vue", "react", "python", "java", "node", "postgresql"},
	// German, web
	"webentwickler":   {"vue", "react", "javascript", "python", "node", "html", "css"},
	"webentwicklung":  {"vue", "react", "javascript", "python", "node", "html", "css"},
	"web-entwickler":  {"vue", "react", "javascript", "python", "node", "html", "css"},
	"web-entwicklung": {"vue", "react", "javascript", "python", "node", "html", "css"},
	// German, software
	"softwareentwickler":   {"python", "java", "c#", "javascript", "typescript"},
	"softwareentwicklung":  {"python", "java", "c#", "javascript", "typescript"},
	"software-entwickler":  {"python", "java", "c#", "javascript", "typescript"},
	"software-entwicklung": {"python", "java", "c#", "javascript", "typescript"},
	// German, databases
	"datenbankentwickler":   {"postgresql", "mysql", "sql", "mongodb"},
	"datenbankentwicklung":  {"postgresql", "mysql", "sql", "mongodb"},
	"datenbank-entwickler":  {"postgresql", "mysql", "sql", "mongodb"},
	"datenbank-entwicklung": {"postgresql", "mysql", "sql", "mongodb"},
	// DevOps
	"devops-engineer":   {"docker", "kubernetes", "jenkins", "gitlab", "cicd", "aws", "azure"},
	"devops engineer":   {"docker", "kubernetes", "jenkins", "gitlab", "cicd", "aws", "azure"},
	"devops":            {"docker", "kubernetes", "jenkins", "gitlab", "cicd"},
	"devops-entwickler": {"docker", "kubernetes", "jenkins", "gitlab", "cicd"},
	// Cloud
	"cloud-entwickler": {"aws", "azure", "docker", "kubernetes"},
	"cloud entwickler": {"aws", "azure", "docker", "kubernetes"},
	"cloud-architekt":  {"aws", "azure", "docker", "kubernetes"},
	"cloud architekt":  {"aws", "azure", "docker", "kubernetes"},
	// APIs
	"api-entwickler":  {"rest", "graphql", "python", "node", "fastapi"},
	"api entwickler":  {"rest", "graphql", "python", "node", "fastapi"},
	"api-entwicklung": {"rest", "graphql", "python", "node", "fastapi"},
	// English role terms
	"frontend developer":   {"vue", "react", "angular", "javascript", "typescript"},
	"backend developer":    {"python", "java", "c#", "node", "django", "fastapi", "spring"},
	"fullstack developer":  {"vue", "react", "python", "java", "node", "postgresql"},
	"full stack developer": {"vue", "react", "python", "java", "node", "postgresql"},
	"web developer":        {"vue", "react", "javascript", "python", "node"},
	"software developer":   {"python", "java", "c#", "javascript", "typescript"},
	"software engineer":    {"python", "java", "c#", "javascript", "typescript"},
}

var versionSuffix = regexp.MustCompile(`\s*\d+(\.\d+)*\s*$`)

// Normalize maps a skill string to its canonical form: lower-case and
// trim, try the alias table, then retry with a trailing version stripped.
// Unknown skills come back lower-cased but otherwise untouched.
func Normalize(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))

	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	if canonical, ok := aliases[versionSuffix.ReplaceAllString(s, "")]; ok {
		return canonical
	}
	return s
}

// ExpandTerms collects the concrete skills implied by umbrella role terms
// in a posting text ("Frontend-Entwickler" implies vue, react, ...). The
// result is sorted and deduplicated.
func ExpandTerms(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	for term, implied := range hierarchy {
		if strings.Contains(lower, term) {
			for _, s := range implied {
				seen[s] = true
			}
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
