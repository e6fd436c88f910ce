package ucd

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// minOutcomeLength filters out fragments that are too short to be a
// real learning outcome statement.
const minOutcomeLength = 10

// Pre-compiled regular expressions for descriptor parsing.
var (
	h1Tag       = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	titleTag    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	titlePrefix = regexp.MustCompile(`^UCD\s*-\s*`)

	metaDescription        = regexp.MustCompile(`(?is)<meta[^>]*name=["']description["'][^>]*content=["']([^"']*)["']`)
	metaDescriptionReverse = regexp.MustCompile(`(?is)<meta[^>]*content=["']([^"']*)["'][^>]*name=["']description["']`)

	accordionButton = regexp.MustCompile(`(?is)<button([^>]*accordion-button[^>]*)>(.*?)</button>`)
	ariaControls    = regexp.MustCompile(`aria-controls=["']([^"']+)["']`)
	accordionBody   = regexp.MustCompile(`(?is)<div[^>]*accordion-body[^>]*>(.*?)</div>`)

	outcomesHeading = regexp.MustCompile(`(?is)<h6[^>]*>[^<]*Learning Outcomes[^<]*</h6>`)
	paragraphTag    = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	listTag         = regexp.MustCompile(`(?is)<[ou]l[^>]*>(.*?)</[ou]l>`)
	listItemTag     = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	numberedLine    = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

	creditsPattern     = regexp.MustCompile(`(?i)Credits:\s*(\d+)`)
	levelPattern       = regexp.MustCompile(`(?i)Level:\s*(\d+)`)
	coordinatorPattern = regexp.MustCompile(`(?i)(?:Module Coordinator|Coordinator):\s*([^\n]+)`)

	brTags      = regexp.MustCompile(`(?i)<br\s*/?>`)
	allTags     = regexp.MustCompile(`<[^>]+>`)
	multiSpaces = regexp.MustCompile(`[ \t]+`)
)

// parseDescriptor extracts a module from a descriptor page. Missing
// sections come back zero-valued; the caller decides what counts as a
// usable record.
func parseDescriptor(page string) domain.Module {
	text := stripHTML(page)

	return domain.Module{
		Title:            extractTitle(page),
		Description:      extractDescription(page),
		LearningOutcomes: extractLearningOutcomes(page),
		Syllabus:         accordionContent(page, []string{"syllabus", "content", "what is covered", "module content"}),
		Assessment:       accordionContent(page, []string{"assessment", "how will i be assessed", "how am i assessed"}),
		Credits:          extractInt(creditsPattern, text),
		Level:            extractInt(levelPattern, text),
		Coordinator:      extractCoordinator(text),
	}
}

// extractTitle prefers the page h1, falling back to the document title
// with the directory's "UCD - " prefix removed.
func extractTitle(page string) string {
	if m := h1Tag.FindStringSubmatch(page); len(m) > 1 {
		if title := cleanText(m[1]); title != "" {
			return title
		}
	}
	if m := titleTag.FindStringSubmatch(page); len(m) > 1 {
		return strings.TrimSpace(titlePrefix.ReplaceAllString(cleanText(m[1]), ""))
	}
	return ""
}

// extractDescription prefers the meta description tag, falling back to
// a description accordion section.
func extractDescription(page string) string {
	if m := metaDescription.FindStringSubmatch(page); len(m) > 1 {
		if desc := strings.TrimSpace(html.UnescapeString(m[1])); desc != "" {
			return desc
		}
	}
	if m := metaDescriptionReverse.FindStringSubmatch(page); len(m) > 1 {
		if desc := strings.TrimSpace(html.UnescapeString(m[1])); desc != "" {
			return desc
		}
	}
	return accordionContent(page, []string{"description", "about"})
}

// accordionContent finds the first accordion section whose button label
// contains one of the keywords and returns its body text.
func accordionContent(page string, keywords []string) string {
	body := accordionBodyFor(page, keywords)
	if body == "" {
		return ""
	}
	return cleanText(body)
}

// accordionBodyFor returns the raw HTML of the accordion body whose
// button label matches one of the keywords. The button's aria-controls
// attribute names the panel div that wraps the body.
func accordionBodyFor(page string, keywords []string) string {
	for _, m := range accordionButton.FindAllStringSubmatch(page, -1) {
		label := strings.ToLower(cleanText(m[2]))

		matched := false
		for _, keyword := range keywords {
			if strings.Contains(label, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		controls := ariaControls.FindStringSubmatch(m[1])
		if len(controls) < 2 {
			continue
		}

		idx := strings.Index(page, `id="`+controls[1]+`"`)
		if idx == -1 {
			idx = strings.Index(page, `id='`+controls[1]+`'`)
		}
		if idx == -1 {
			continue
		}

		if body := accordionBody.FindStringSubmatch(page[idx:]); len(body) > 1 {
			return body[1]
		}
	}
	return ""
}

// extractLearningOutcomes pulls the outcome statements from the "What
// will I learn?" accordion section. The directory renders outcomes as a
// numbered paragraph separated by BR tags; older pages use a plain list.
func extractLearningOutcomes(page string) []string {
	body := accordionBodyFor(page, []string{"what will i learn", "learning outcome"})
	if body == "" {
		return nil
	}

	var outcomes []string

	if loc := outcomesHeading.FindStringIndex(body); loc != nil {
		rest := body[loc[1]:]
		if p := paragraphTag.FindStringSubmatch(rest); len(p) > 1 {
			text := allTags.ReplaceAllString(brTags.ReplaceAllString(p[1], "\n"), "")
			for _, line := range strings.Split(html.UnescapeString(text), "\n") {
				line = strings.TrimSpace(line)
				if m := numberedLine.FindStringSubmatch(line); m != nil {
					if outcome := strings.TrimSpace(m[2]); len(outcome) > minOutcomeLength {
						outcomes = append(outcomes, outcome)
					}
				}
			}
		}
	}

	// Older descriptor pages use a plain ol/ul list instead.
	if len(outcomes) == 0 {
		if list := listTag.FindStringSubmatch(body); len(list) > 1 {
			for _, li := range listItemTag.FindAllStringSubmatch(list[1], -1) {
				if outcome := cleanText(li[1]); len(outcome) > minOutcomeLength {
					outcomes = append(outcomes, outcome)
				}
			}
		}
	}

	return outcomes
}

func extractInt(re *regexp.Regexp, text string) int {
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return v
		}
	}
	return 0
}

func extractCoordinator(text string) string {
	if m := coordinatorPattern.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// stripHTML removes tags and collapses the page into trimmed lines,
// so the labelled-field patterns can match across element boundaries.
func stripHTML(page string) string {
	page = brTags.ReplaceAllString(page, "\n")
	page = allTags.ReplaceAllString(page, "\n")
	page = html.UnescapeString(page)
	page = multiSpaces.ReplaceAllString(page, " ")

	lines := strings.Split(page, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// cleanText strips tags from an HTML fragment and normalises whitespace
// into a single line.
func cleanText(fragment string) string {
	text := allTags.ReplaceAllString(brTags.ReplaceAllString(fragment, " "), " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(multiSpaces.ReplaceAllString(strings.ReplaceAll(text, "\n", " "), " "))
}
