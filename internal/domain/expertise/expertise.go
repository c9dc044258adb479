// Package expertise maps raw skill keywords to the broader expertise
// categories mentors declare.
package expertise

import "strings"

// Category names used by mentor profiles.
const (
	WebDevelopment    = "web development"
	MobileDevelopment = "mobile development"
	Backend           = "backend development"
	DataScience       = "data science"
	MachineLearning   = "machine learning"
	DevOps            = "devops"
	CloudComputing    = "cloud computing"
	Databases         = "databases"
	Security          = "cybersecurity"
	UIUXDesign        = "ui/ux design"
	GameDevelopment   = "game development"
	Blockchain        = "blockchain"
)

var categories = map[string]string{
	"react":               WebDevelopment,
	"react.js":            WebDevelopment,
	"reactjs":             WebDevelopment,
	"angular":             WebDevelopment,
	"vue":                 WebDevelopment,
	"vue.js":              WebDevelopment,
	"svelte":              WebDevelopment,
	"next.js":             WebDevelopment,
	"javascript":          WebDevelopment,
	"typescript":          WebDevelopment,
	"html":                WebDevelopment,
	"css":                 WebDevelopment,
	"tailwind":            WebDevelopment,
	"node":                Backend,
	"node.js":             Backend,
	"nodejs":              Backend,
	"express":             Backend,
	"django":              Backend,
	"flask":               Backend,
	"spring":              Backend,
	"go":                  Backend,
	"golang":              Backend,
	"java":                Backend,
	"ruby":                Backend,
	"rails":               Backend,
	"php":                 Backend,
	"graphql":             Backend,
	"rest":                Backend,
	"flutter":             MobileDevelopment,
	"react native":        MobileDevelopment,
	"swift":               MobileDevelopment,
	"kotlin":              MobileDevelopment,
	"android":             MobileDevelopment,
	"ios":                 MobileDevelopment,
	"python":              DataScience,
	"pandas":              DataScience,
	"numpy":               DataScience,
	"r":                   DataScience,
	"statistics":          DataScience,
	"tableau":             DataScience,
	"tensorflow":          MachineLearning,
	"pytorch":             MachineLearning,
	"scikit-learn":        MachineLearning,
	"keras":               MachineLearning,
	"nlp":                 MachineLearning,
	"ml":                  MachineLearning,
	"ai":                  MachineLearning,
	"docker":              DevOps,
	"kubernetes":          DevOps,
	"k8s":                 DevOps,
	"jenkins":             DevOps,
	"terraform":           DevOps,
	"ansible":             DevOps,
	"ci/cd":               DevOps,
	"linux":               DevOps,
	"aws":                 CloudComputing,
	"azure":               CloudComputing,
	"gcp":                 CloudComputing,
	"firebase":            CloudComputing,
	"mongodb":             Databases,
	"postgresql":          Databases,
	"postgres":            Databases,
	"mysql":               Databases,
	"redis":               Databases,
	"sql":                 Databases,
	"cybersecurity":       Security,
	"penetration testing": Security,
	"cryptography":        Security,
	"figma":               UIUXDesign,
	"sketch":              UIUXDesign,
	"ui":                  UIUXDesign,
	"ux":                  UIUXDesign,
	"unity":               GameDevelopment,
	"unreal":              GameDevelopment,
	"solidity":            Blockchain,
	"ethereum":            Blockchain,
	"web3":                Blockchain,
}

// Lookup returns the category for a keyword. ok is false for unmapped keywords.
func Lookup(keyword string) (string, bool) {
	c, ok := categories[normalize(keyword)]
	return c, ok
}

// Map returns the category of keyword, or the normalized keyword itself
// when no category is known.
func Map(keyword string) string {
	if c, ok := Lookup(keyword); ok {
		return c
	}
	return normalize(keyword)
}

// MapAll maps every keyword, dropping blanks. Order and duplicates are kept.
func MapAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if m := Map(k); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func normalize(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
