package bundle

// languageTagFor resolves the code-fence language tag for a file. The file
// extension is consulted first, then the exact file name, so names such as
// Dockerfile resolve even though they carry no extension. Unknown files get
// an empty tag, which produces a plain fence.
func languageTagFor(languageTags map[string]string, fileName string) string {
	if languageTag, found := languageTags[FileExtension(fileName)]; found {
		return languageTag
	}
	if languageTag, found := languageTags[fileName]; found {
		return languageTag
	}
	return ""
}
