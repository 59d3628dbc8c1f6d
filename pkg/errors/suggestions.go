package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryConnection:
		return g.generateConnectionSuggestions(affectedPath)
	case CategorySymlink:
		return g.generateSymlinkSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions(_ string) []string {
	return []string{
		"Verify the host name and port in the sftp:// URL",
		"Check that the SSH agent is running and has a loaded key ('ssh-add -l')",
		"Confirm the remote server accepts SFTP connections for this user",
		"Try connecting manually with 'sftp user@host' to see the full error",
	}
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure all parent directories exist for "+path)
	} else {
		suggestions = append(suggestions, "Ensure all parent directories exist")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read and execute permissions on the directories being traversed",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateSymlinkSuggestions(path string) []string {
	suggestions := []string{
		"Inspect the symbolic link chain with 'ls -l' to find the loop or broken target",
	}

	if path != "" {
		suggestions = append(suggestions, "Trace the chain with 'readlink -f "+path+"'")
	}

	suggestions = append(suggestions, "Re-run without --follow-symlinks to skip links entirely")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify file and directory permissions",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
