package errors

// ErrorCategory groups errors by the part of a build that failed. The CLI
// derives exit codes from it.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// CategoryDate marks a record whose date is missing or not YYYY-MM-DD.
	CategoryDate ErrorCategory = "date"
	// CategoryMarker marks a preview splice whose marker element could not be located.
	CategoryMarker      ErrorCategory = "marker"
	CategoryFileSystem  ErrorCategory = "filesystem"
	CategoryTemplate    ErrorCategory = "template"
	CategoryMarkdown    ErrorCategory = "markdown"
	CategoryFrontMatter ErrorCategory = "frontmatter"
	CategoryBuild       ErrorCategory = "build"

	CategoryInternal ErrorCategory = "internal"
)

// Kind is the user-facing name of the failure.
func (c ErrorCategory) Kind() string {
	switch c {
	case CategoryDate:
		return "InvalidDate"
	case CategoryMarker:
		return "MarkerNotFound"
	case CategoryFileSystem:
		return "IOFailure"
	case CategoryTemplate:
		return "TemplateError"
	case CategoryMarkdown:
		return "MarkdownUnavailable"
	case CategoryFrontMatter:
		return "InvalidFrontMatter"
	case "":
		return "Error"
	default:
		return string(c)
	}
}

// ExitCode is the process exit status used when an error of this category
// ends the run.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case CategoryValidation:
		return 2
	case CategoryConfig:
		return 7
	case CategoryInternal:
		return 10
	case CategoryBuild, CategoryDate, CategoryMarker, CategoryTemplate, CategoryMarkdown, CategoryFrontMatter, CategoryFileSystem:
		return 11
	default:
		return 1
	}
}

// ErrorSeverity indicates whether the build can go on.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // aborts the build
	SeverityError   ErrorSeverity = "error"   // fails the current operation
	SeverityWarning ErrorSeverity = "warning" // logged, the build continues
)

// Field is one piece of structured context, e.g. the file being read.
type Field struct {
	Key   string
	Value any
}

// setField replaces key in fields or appends it, keeping insertion order.
func setField(fields []Field, key string, value any) []Field {
	for i := range fields {
		if fields[i].Key == key {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, Field{Key: key, Value: value})
}
