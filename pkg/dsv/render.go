package dsv

import "strings"

// Render serializes records to DSV text with the UNIX configuration.
//
// Fields are joined with the separator and each record is terminated with a
// line feed. Any occurrence of the separator, the escape byte, or a line
// feed inside a field is prefixed with the escape byte, so the output parses
// back to the same records.
//
// Example:
//
//	out := dsv.Render([][]string{{"a:b", "c"}})
//	// out is "a\\:b:c\n"
func Render(records [][]string) string {
	return RenderWithOptions(records, DefaultOptions())
}

// RenderWithOptions serializes records with custom separator and escape
// bytes.
func RenderWithOptions(records [][]string, opts Options) string {
	var sb strings.Builder
	for _, record := range records {
		writeRecord(&sb, record, opts)
	}
	return sb.String()
}

// writeRecord writes a single record, escaping field content as needed.
func writeRecord(sb *strings.Builder, fields []string, opts Options) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(opts.Separator)
		}
		for j := 0; j < len(field); j++ {
			c := field[j]
			if c == opts.Separator || c == opts.Escape || c == '\n' {
				sb.WriteByte(opts.Escape)
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('\n')
}
