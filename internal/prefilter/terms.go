package prefilter

// industryScreenTerms name trades that regularly flood procurement
// portals and never lead to software work. They reject only in the
// absence of software context, so tenders about portals FOR these
// trades survive. All lower case.
var industryScreenTerms = []string{
	// Bau
	"bauarbeiten", "bauleistungen", "hochbau", "tiefbau", "rohbau",
	"straßenbau", "brückenbau", "kanalbau", "betonarbeiten",
	"mauerarbeiten", "dacharbeiten", "estricharbeiten", "putzarbeiten",
	"fliesenarbeiten", "trockenbau", "gerüstbau", "abbrucharbeiten",
	"erdarbeiten", "pflasterarbeiten", "asphaltarbeiten",
	// Elektrotechnik (nicht IT)
	"elektroinstallation", "starkstrom", "elektroanlagen", "schaltanlagen",
	"niederspannung", "mittelspannung", "hochspannung", "trafostation",
	"blitzschutz", "elektromontage",
	// Mechanik/Maschinenbau
	"metallbau", "stahlbau", "schweißarbeiten", "rohrleitungsbau",
	"schlosserei", "feinmechanik", "werkzeugbau", "formenbau",
	// HVAC/TGA
	"heizungsanlage", "lüftungsanlage", "klimaanlage", "sanitärinstallation",
	"kältetechnik", "wärmepumpe", "heizungsbau", "lüftungsbau",
	"sanitär", "heizung", "lüftung", "klima",
	// Facility/Reinigung
	"gebäudereinigung", "unterhaltsreinigung", "glasreinigung",
	"winterdienst", "grünflächenpflege", "gartenpflege", "hausmeister",
	// Sicherheit (physisch)
	"wachdienst", "objektschutz", "sicherheitsdienst", "pförtnerdienst",
	"brandmeldeanlage", "einbruchmeldeanlage", "videoüberwachung",
	// Transport/Logistik
	"spedition", "umzugsleistungen", "möbeltransport", "kurierdienst",
	// Druck/Büro/Textil
	"druckerzeugnisse", "drucksachen", "büromöbel", "büroausstattung",
	"arbeitskleidung", "textilreinigung", "wäscherei",
	// Catering/Verpflegung
	"catering", "kantinenservice", "verpflegung", "essenslieferung",
	// Medizin (nicht IT)
	"labordiagnostik", "medizinprodukte", "pflegedienstleistung",
}

// softwareContextTerms mark a text as software/IT-related. The list is
// intentionally broad ("system", "portal", "dienstleistung") because a
// missed tender costs more than a scored dud.
var softwareContextTerms = []string{
	// Software/Entwicklung allgemein
	"software", "softwareentwicklung", "programmierung", "entwicklung",
	"anwendung", "applikation", "application",
	// Web
	"webanwendung", "webportal", "webapp", "web-app", "website",
	"online-plattform", "webapplikation", "webentwicklung",
	"internetauftritt", "webseite",
	// Mobile
	"mobile app", "app-entwicklung", "mobilanwendung",
	// IT-Systeme
	"it-system", "informationssystem", "datenbanksystem", "fachverfahren",
	"fachanwendung", "it-lösung", "it-projekt", "it-dienstleistung",
	// Digitalisierung
	"digitalisierung", "e-government", "ozg", "onlinezugangsgesetz",
	"digital", "elektronisch",
	// Technik
	"api", "schnittstelle", "backend", "frontend", "datenbank",
	"cloud", "server", "hosting", "plattform",
	// Sprachen/Frameworks als Kontext
	"python", "java", "javascript", "typescript", "vue", "react",
	"angular", "node", "django", "spring", "docker", "kubernetes",
	// IT-Beratung
	"it-beratung", "systemintegration", "softwarearchitektur",
	// Allgemeinere Begriffe aus Ausschreibungen
	"beratungsleistung",
	"dienstleistung",
	"system",
	"portal",
}
