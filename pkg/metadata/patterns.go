package metadata

import "regexp"

// patternRule pairs a compiled expression with the submatch index to keep.
// Group 0 keeps the whole match.
type patternRule struct {
	re    *regexp.Regexp
	group int
}

// Case-number rules run in order; the specific labeled forms come before the
// generic "Case No." catch-all so "Criminal Appeal No. 45 of 2020" is not
// reported as a bare case number.
var caseNumberRules = []patternRule{
	{regexp.MustCompile(`(?i)Death Reference No[.\s]+(\d+)\s+of\s+(\d+)`), 0},
	{regexp.MustCompile(`(?i)Criminal Appeal No[.\s]+(\d+)\s+of\s+(\d+)`), 0},
	{regexp.MustCompile(`(?i)Civil Appeal No[.\s]+(\d+)\s+of\s+(\d+)`), 0},
	{regexp.MustCompile(`(?i)Criminal Revision No[.\s]+(\d+)\s+of\s+(\d+)`), 0},
	{regexp.MustCompile(`(?i)Civil Revision No[.\s]+(\d+)\s+of\s+(\d+)`), 0},
	{regexp.MustCompile(`(?i)Writ Petition No[.\s]+(\d+)\s+of\s+(\d+)`), 0},
	{regexp.MustCompile(`(?i)Case No[.\s]+(\d+)[/\s]+(\d+)`), 0},
}

// filenameCasePattern matches the "<serial>_<party>_" prefix of corpus PDF
// filenames, used when no in-text case number is found.
var filenameCasePattern = regexp.MustCompile(`(\d+)_([A-Za-z]+)_`)

// caseTypes is a priority vocabulary: the first label found anywhere in the
// text (case-insensitively) wins.
var caseTypes = []string{
	"Death Reference",
	"Criminal Appeal",
	"Civil Appeal",
	"Criminal Revision",
	"Civil Revision",
	"Writ Petition",
}

var courtRules = []patternRule{
	{regexp.MustCompile(`(Supreme Court of Bangladesh[^\n]*)`), 1},
	{regexp.MustCompile(`(High Court Division[^\n]*)`), 1},
	{regexp.MustCompile(`(Appellate Division[^\n]*)`), 1},
}

var districtRules = []patternRule{
	{regexp.MustCompile(`District:\s*([A-Za-z\s]+)\.`), 1},
}

// Judge names terminate at a newline or an "And" joining two names on one
// line. The more specific honorific form runs last; its matches are already
// covered by the first two rules and deduplication absorbs the overlap.
var judgeRules = []patternRule{
	{regexp.MustCompile(`Mr\.\s*Justice\s+([A-Za-z\s.]+?)(?:\n|And|$)`), 1},
	{regexp.MustCompile(`Justice\s+([A-Za-z\s.]+?)(?:\n|And|$)`), 1},
	{regexp.MustCompile(`Hon'ble\s+Mr\.\s*Justice\s+([A-Za-z\s.]+?)(?:\n|$)`), 1},
}

// Party names never span lines, so the classes admit spaces but not \s.
var versusPattern = regexp.MustCompile(`(?i)([A-Za-z .]+?)\s+-?\s*Versus\s*-?\s*([A-Za-z .]+?)(?:\n|$)`)

var hearingDateRules = []patternRule{
	{regexp.MustCompile(`Heard On:\s*(\d{2}\.\d{2}\.\d{4}(?:\s+and\s+\d{2}\.\d{2}\.\d{4})?)`), 1},
	{regexp.MustCompile(`Date of Hearing:\s*(\d{2}[./-]\d{2}[./-]\d{4})`), 1},
}

var judgmentDateRules = []patternRule{
	{regexp.MustCompile(`Judgment Delivered On:\s*(\d{2}\.\d{2}\.\d{4})`), 1},
	{regexp.MustCompile(`Date of Judgment:\s*(\d{2}[./-]\d{2}[./-]\d{4})`), 1},
}

// Reporter citations in the Bangladeshi style, e.g. "45 DLR (AD) 100".
var citationRules = []patternRule{
	{regexp.MustCompile(`\d+\s+(?:DLR|BLD|BLC|MLR|ADC)\s+(?:\([A-Z]+\)\s+)?\d+`), 0},
}
