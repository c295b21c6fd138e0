package config

// DefaultOutputFileName is the bundle destination used when no output value is supplied.
const DefaultOutputFileName = "project_bundle.md"

// DefaultIncludeEntries returns the built-in set of file extensions and exact
// file names eligible for bundling. Callers receive a fresh copy.
func DefaultIncludeEntries() []string {
	return []string{
		".py", ".js", ".ts", ".jsx", ".tsx", ".html", ".css", ".scss", ".json",
		".md", ".java", ".c", ".h", ".cpp", ".hpp", ".cs", ".go", ".rs", ".php",
		".rb", ".swift", ".kt", ".kts", ".sh", ".yml", ".yaml", ".toml", ".ini",
		".cfg", ".sql", ".dockerfile", "Dockerfile",
	}
}

// DefaultExcludePatterns returns the built-in ignore patterns applied to every
// run ahead of user exclusions and .gitignore entries. Callers receive a fresh copy.
func DefaultExcludePatterns() []string {
	return []string{
		".git", ".idea", ".vscode", "venv", ".venv", "__pycache__", "node_modules",
		"dist", "build", "target", "*.pyc", "*.log", "*.swp", "*.swo",
	}
}

// DefaultLanguageTags returns the mapping from file extension or exact file
// name to the fence label used for syntax highlighting. Extensions without an
// entry render a plain fence. Callers receive a fresh copy.
func DefaultLanguageTags() map[string]string {
	return map[string]string{
		".py":         "python",
		".js":         "javascript",
		".ts":         "typescript",
		".jsx":        "jsx",
		".tsx":        "tsx",
		".html":       "html",
		".css":        "css",
		".scss":       "scss",
		".json":       "json",
		".md":         "markdown",
		".java":       "java",
		".c":          "c",
		".h":          "c",
		".cpp":        "cpp",
		".hpp":        "cpp",
		".cs":         "csharp",
		".go":         "go",
		".rs":         "rust",
		".php":        "php",
		".rb":         "ruby",
		".swift":      "swift",
		".kt":         "kotlin",
		".kts":        "kotlin",
		".sh":         "shell",
		".yml":        "yaml",
		".yaml":       "yaml",
		".sql":        "sql",
		".dockerfile": "dockerfile",
		"Dockerfile":  "dockerfile",
	}
}
