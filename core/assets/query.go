package assets

import "strings"

var termEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// NormalizeFolder trims whitespace and a trailing slash, keeping the root "/".
func NormalizeFolder(folder string) string {
	folder = strings.TrimSpace(folder)
	if len(folder) > 1 {
		folder = strings.TrimRight(folder, "/")
		if folder == "" {
			folder = "/"
		}
	}
	return folder
}

// FolderQuery matches the direct children of folder.
func FolderQuery(folder string) string {
	return `folderPath:"` + termEscaper.Replace(NormalizeFolder(folder)) + `"`
}

// BulkStatusQuery matches every asset below folder whose status is not yet status.
func BulkStatusQuery(folder, status string) string {
	return `ancestorPaths:"` + termEscaper.Replace(NormalizeFolder(folder)) + `" -status:"` + termEscaper.Replace(status) + `"`
}
