package errors

// ErrorBuilder assembles a ClassifiedError.
type ErrorBuilder struct {
	err ClassifiedError
}

// NewError starts an error of the given category with SeverityError.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{err: ClassifiedError{category: category, severity: SeverityError, message: message}}
}

// WrapError starts an error that wraps cause.
func WrapError(cause error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.err.cause = cause
	return b
}

// WithCause sets the wrapped error.
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	b.err.cause = err
	return b
}

// WithContext records key=value. Setting a key twice keeps the last value.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.err.fields = setField(b.err.fields, key, value)
	return b
}

func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	b.err.severity = SeverityFatal
	return b
}

func (b *ErrorBuilder) Warning() *ErrorBuilder {
	b.err.severity = SeverityWarning
	return b
}

// Build returns the error. The builder may be reused afterwards.
func (b *ErrorBuilder) Build() *ClassifiedError {
	e := b.err
	e.fields = append([]Field(nil), b.err.fields...)
	return &e
}

// ConfigError reports an unreadable or undecodable configuration.
func ConfigError(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message).Fatal()
}

// ValidationError reports a configuration value that is out of range.
func ValidationError(message string) *ErrorBuilder {
	return NewError(CategoryValidation, message).Fatal()
}

// InvalidDateError reports a missing or malformed date field.
func InvalidDateError(message string) *ErrorBuilder {
	return NewError(CategoryDate, message).Fatal()
}

// MarkerNotFoundError reports a preview marker that cannot be located.
func MarkerNotFoundError(message string) *ErrorBuilder {
	return NewError(CategoryMarker, message).Fatal()
}

// IOError reports a file that cannot be read or written.
func IOError(message string) *ErrorBuilder {
	return NewError(CategoryFileSystem, message).Fatal()
}

// TemplateError reports a template that is missing or fails to execute.
func TemplateError(message string) *ErrorBuilder {
	return NewError(CategoryTemplate, message).Fatal()
}

// MarkdownError reports a conversion that fell back to raw text.
func MarkdownError(message string) *ErrorBuilder {
	return NewError(CategoryMarkdown, message).Warning()
}

func InternalError(message string) *ErrorBuilder {
	return NewError(CategoryInternal, message).Fatal()
}
