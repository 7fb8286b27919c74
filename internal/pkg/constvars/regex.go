package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_.,<>?/\\-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`

	// First brace-delimited substring of a model response; used when strict
	// JSON parsing of the whole output fails.
	RegexFirstJSONObject = `\{[\s\S]*\}`
)
