package report

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/internal/status"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// Anchor phrases of the supported bureau-report layout. Only this layout is
// supported; other report formats fail with ErrSectionNotFound.
const (
	statusSectionStart  = "Unsecured Credit Card"
	statusSectionMarker = "Account Status History"
	statusSectionEnd    = "HDB Loan"
	limitSectionStart   = "Unsecured Credit Limit"
	limitSectionEnd     = "Applicant Type"
)

// defaultCreditLimit applies when the report carries no credit-limit
// section.
const defaultCreditLimit = 10

// statusRunLength is the length of the letter-code run holding the account
// status history; its first half covers the most recent 6 months.
const statusRunLength = 12

var (
	statusRunRe = regexp.MustCompile(`[ABCD*GHRSW]+`)
	balanceRe   = regexp.MustCompile(`\d+\.\d+`)
)

// Extraction is a raw status sequence plus the utilization ratio derived
// alongside it.
type Extraction struct {
	Sequence    []contracts.Status
	Utilization float64
}

// Extractor parses personal credit-bureau reports.
type Extractor struct {
	logger *logger.Logger
}

// NewExtractor creates a bureau-report extractor.
func NewExtractor(log *logger.Logger) *Extractor {
	return &Extractor{logger: log}
}

// Extract locates the unsecured-credit-card status section, reads the
// recent-6-months letter codes and the outstanding balance, and derives the
// utilization ratio against the report's credit limit.
func (e *Extractor) Extract(doc contracts.PageTextSource) (*Extraction, error) {
	pages, err := doc.Pages()
	if err != nil {
		return nil, err
	}

	var (
		sequence    string
		balance     float64
		found       bool
		creditLimit = defaultCreditLimit
	)

	for _, text := range pages {
		if strings.Contains(text, statusSectionStart) && strings.Contains(text, statusSectionMarker) {
			slice := statusSlice(text)

			run, ok := findStatusRun(slice)
			if !ok {
				continue
			}
			sequence = run[:statusRunLength/2]

			m := balanceRe.FindString(slice)
			if m == "" {
				return nil, fmt.Errorf("%w: status section of report", contracts.ErrBalanceNotFound)
			}
			parsed, err := strconv.ParseFloat(m, 64)
			if err != nil {
				return nil, fmt.Errorf("parse balance %q: %w", m, err)
			}
			// The ledger tracks whole units; fractional cents are dropped.
			balance = math.Trunc(parsed)
			found = true
		}

		if limit, ok := parseCreditLimit(text); ok {
			creditLimit = limit
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %q / %q", contracts.ErrSectionNotFound, statusSectionStart, statusSectionMarker)
	}
	if creditLimit == 0 {
		return nil, fmt.Errorf("%w: report credit limit is zero", contracts.ErrMissingCreditLimit)
	}

	mapped, err := status.MapSequence(sequence)
	if err != nil {
		return nil, err
	}

	e.logger.WithFields(map[string]interface{}{
		"sequence":     sequence,
		"balance":      balance,
		"credit_limit": creditLimit,
	}).Debug("Extracted bureau report")

	return &Extraction{
		Sequence:    mapped,
		Utilization: balance / float64(creditLimit),
	}, nil
}

// statusSlice bounds the status section: from the first start anchor to the
// first end anchor after it, or to the end of the page when absent.
func statusSlice(text string) string {
	start := strings.Index(text, statusSectionStart)
	rest := text[start:]
	if end := strings.Index(rest, statusSectionEnd); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// findStatusRun returns the first letter-code run of exactly 12 symbols.
// Behaviour under multiple qualifying runs is unspecified upstream; taking
// the first keeps the parse deterministic.
func findStatusRun(slice string) (string, bool) {
	for _, run := range statusRunRe.FindAllString(slice, -1) {
		if len(run) == statusRunLength {
			return run, true
		}
	}
	return "", false
}

// parseCreditLimit reads the integer between the credit-limit anchors,
// tolerating thousand separators.
func parseCreditLimit(text string) (int, bool) {
	start := strings.Index(text, limitSectionStart)
	if start < 0 {
		return 0, false
	}
	rest := text[start+len(limitSectionStart):]
	if end := strings.Index(rest, limitSectionEnd); end >= 0 {
		rest = rest[:end]
	}
	raw := strings.ReplaceAll(strings.TrimSpace(rest), ",", "")
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return limit, true
}
