package parser

import (
	"regexp"
	"strings"
)

var (
	boldRe          = regexp.MustCompile(`(?:\*\*|__)(.*?)(?:\*\*|__)`)
	strikethroughRe = regexp.MustCompile(`~~(.*?)~~`)
	// Single markers only count as emphasis when they wrap the whole value;
	// an interior underscore pair in something like "box_set_up" is part of
	// the value.
	italicRe = regexp.MustCompile(`^(?:\*|_)(.*)(?:\*|_)$`)
)

// Extract pulls the labeled fields out of one document. A label absent from
// the text yields no map entry; whether that matters is the assembler's call.
func (p *Profile) Extract(text string) map[Field]string {
	fields := make(map[Field]string)
	for key, pattern := range p.patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value := CleanMarkdown(match[1])
		if value != "" {
			fields[key] = value
		}
	}
	return fields
}

// CleanMarkdown strips emphasis wrappers (**bold**, *italic*, __ and _
// variants, ~~strikethrough~~) and stray marker characters around a value
// without touching the value itself.
func CleanMarkdown(s string) string {
	s = boldRe.ReplaceAllString(s, "$1")
	s = strikethroughRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = strings.Trim(s, "*_~")
	return strings.TrimSpace(s)
}
