package resume

// Fixed reference catalogs for section and skill scanning. Both are
// process-wide constants; nothing registers into them at runtime.

// SectionOrder fixes report and suggestion ordering.
var SectionOrder = []string{"Education", "Experience", "Skills", "Projects", "Contact"}

var sectionMarkers = map[string][]string{
	"Education":  {"education", "academic", "degree", "university", "college", "bachelor", "master", "phd"},
	"Experience": {"experience", "work history", "employment", "worked at", "position", "job"},
	"Skills":     {"skills", "technical skills", "competencies", "expertise", "proficient"},
	"Projects":   {"projects", "portfolio", "work samples", "achievements"},
	"Contact":    {"email", "phone", "contact", "mobile", "@", "linkedin"},
}

// SkillCatalog is scanned in order; skillsFound keeps this order.
var SkillCatalog = []string{
	"python", "java", "javascript", "sql", "react", "angular", "vue",
	"node", "flask", "django", "spring", "aws", "azure", "docker",
	"kubernetes", "git", "agile", "scrum", "html", "css", "mongodb",
	"postgresql", "mysql", "rest", "api", "microservices", "ci/cd",
	"machine learning", "data analysis", "tensorflow", "pandas", "numpy",
}
