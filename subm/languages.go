package subm

type language struct {
	ID              int
	CompilerOptions string
	Args            string
}

// keyed by the tag clients send as language_id
var languages = map[string]language{
	"c":    {ID: 50, CompilerOptions: "-g -O2 -std=c11"},
	"cpp":  {ID: 54, CompilerOptions: "-g -O2 -std=c++17"},
	"java": {ID: 62, Args: "-Xss64m -Xmx2048m"},
	"py":   {ID: 71},
}

func lookupLanguage(tag string) (language, bool) {
	lang, ok := languages[tag]
	return lang, ok
}
