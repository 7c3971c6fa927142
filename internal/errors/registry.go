package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Construction Errors (M001-M099)
	// ============================================

	"M001": {
		Category:   CategoryInvalidArgument,
		Message:    "Node is required",
		Detail:     "A view needs a live node to reconcile; nil was passed.",
		Suggestion: "Pass the root *vdom.VNode the view should own.",
	},
	"M002": {
		Category:   CategoryInvalidArgument,
		Message:    "First argument must be a node",
		Detail:     "The live node has no recognisable kind: it is neither an element with a tag nor a text, comment or fragment node.",
		Suggestion: "Build the node with a vdom factory such as vdom.Div or parse it with vdom.ParseString.",
	},
	"M003": {
		Category:   CategoryInvalidArgument,
		Message:    "Update function is required",
		Detail:     "A view produces candidate trees by calling its update function; nil was passed.",
		Suggestion: "Wrap your function with morphed.Mutate (clone mode) or morphed.Render (pure mode).",
	},

	// ============================================
	// Update Errors (M100-M199)
	// ============================================

	"M101": {
		Category:   CategoryRuntime,
		Message:    "Update function returned no tree",
		Detail:     "In pure mode the tree returned by the update function becomes the candidate; it returned nil.",
		Suggestion: "Return a fresh *vdom.VNode from the update function, or enable clone mode.",
	},

	// ============================================
	// Configuration Errors (M200-M299)
	// ============================================

	"M201": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file failed validation.",
	},
	"M202": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "The configuration file could not be read or decoded.",
	},

	// ============================================
	// CLI Errors (M300-M399)
	// ============================================

	"M301": {
		Category: CategoryCLI,
		Message:  "Input file unreadable",
		Detail:   "An HTML input file could not be opened or parsed.",
	},
	"M302": {
		Category: CategoryCLI,
		Message:  "Output could not be written",
		Detail:   "The resulting document or patch list could not be rendered to the output.",
	},
	"M303": {
		Category:   CategoryCLI,
		Message:    "Command failed",
		Suggestion: "Run morphed --help for usage.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
