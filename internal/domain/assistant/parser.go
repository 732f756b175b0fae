package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// intentRules is the ordered (intent, pattern) table. Order encodes priority:
// "remarcar" is tested before the broader "marcar", and "desmarcar" before
// both, so reschedule and cancel requests are never swallowed by schedule.
var intentRules = []struct {
	intent  Intent
	pattern *regexp.Regexp
}{
	{IntentReschedule, regexp.MustCompile(`(?i)remarcar|reagendar|adiar|transferir\s+(a\s+)?consulta`)},
	{IntentCancel, regexp.MustCompile(`(?i)desmarcar|cancelar`)},
	{IntentSchedule, regexp.MustCompile(`(?i)\bmarcar\b|agendar|agende|consulta\s+para`)},
	{IntentPrescribe, regexp.MustCompile(`(?i)prescrever|receitar|\breceita\b`)},
	{IntentNote, regexp.MustCompile(`(?i)anotar|lembrar|registrar|anota[çc][ãa]o`)},
	{IntentSearch, regexp.MustCompile(`(?i)buscar|procurar|pesquisar`)},
	{IntentNavigate, regexp.MustCompile(`(?i)\babrir\b|ir\s+para|mostrar|\bv[áa]\s+para\b`)},
}

// routeTable maps navigation keywords to fixed routes; first match wins.
var routeTable = []struct {
	pattern *regexp.Regexp
	route   string
}{
	{regexp.MustCompile(`(?i)agenda`), "/agenda"},
	{regexp.MustCompile(`(?i)consultas?`), "/appointments"},
	{regexp.MustCompile(`(?i)pacientes?`), "/patients"},
	{regexp.MustCompile(`(?i)not[íi]cias|news`), "/news"},
	{regexp.MustCompile(`(?i)perfil|profile`), "/profile"},
	{regexp.MustCompile(`(?i)in[íi]cio|home`), "/home"},
}

var (
	reToday        = regexp.MustCompile(`(?i)\bhoje\b`)
	reDayAfterNext = regexp.MustCompile(`(?i)depois\s+de\s+amanh[ãa]`)
	reTomorrow     = regexp.MustCompile(`(?i)\bamanh[ãa]\b`)
	reExplicitDay  = regexp.MustCompile(`(?i)\bdia\s+(\d{1,2})(?:\s*/\s*(\d{1,2}))?`)
	reBareDayMonth = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)

	reHourCompact = regexp.MustCompile(`\b(\d{1,2})h(\d{2})?\b`)
	reHourColon   = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	reHourAt      = regexp.MustCompile(`(?i)\b[àa]s?\s+(\d{1,2})\b`)

	reNoteText   = regexp.MustCompile(`(?i)(?:anotar|lembrar|registrar)\s*(?:que\s+|:\s*)?(.+)`)
	reSearchText = regexp.MustCompile(`(?i)(?:buscar|procurar|pesquisar)\s+(?:por\s+)?(.+)`)
)

var weekdays = []struct {
	pattern *regexp.Regexp
	day     time.Weekday
}{
	{regexp.MustCompile(`(?i)\bdomingo\b`), time.Sunday},
	{regexp.MustCompile(`(?i)\bsegunda\b`), time.Monday},
	{regexp.MustCompile(`(?i)\bter[çc]a\b`), time.Tuesday},
	{regexp.MustCompile(`(?i)\bquarta\b`), time.Wednesday},
	{regexp.MustCompile(`(?i)\bquinta\b`), time.Thursday},
	{regexp.MustCompile(`(?i)\bsexta\b`), time.Friday},
	{regexp.MustCompile(`(?i)\bs[áa]bado\b`), time.Saturday},
}

const isoDate = "2006-01-02"

// ParseIntent interprets one free-text command against the given patient
// roster. It never fails: input matching nothing yields the unknown intent
// with only RawInput set. The reference time keeps date resolution pure.
func ParseIntent(rawText string, roster []PatientRef, now time.Time) ParsedIntent {
	result := ParsedIntent{Intent: IntentUnknown, RawInput: rawText}

	text := strings.TrimSpace(rawText)
	if text == "" {
		return result
	}

	for _, rule := range intentRules {
		if rule.pattern.MatchString(text) {
			result.Intent = rule.intent
			break
		}
	}

	if name, id, ok := matchPatient(text, roster); ok {
		result.PatientName = name
		result.PatientID = &id
	}

	if date, ok := extractDate(text, now); ok {
		result.Date = date
	} else if result.Intent == IntentSchedule || result.Intent == IntentCancel {
		result.Date = now.Format(isoDate)
	}

	if t, ok := extractTime(text); ok {
		result.Time = t
	}

	switch result.Intent {
	case IntentNote:
		if m := reNoteText.FindStringSubmatch(text); m != nil {
			result.FreeText = strings.TrimSpace(m[1])
		}
	case IntentSearch:
		if m := reSearchText.FindStringSubmatch(text); m != nil {
			result.FreeText = strings.TrimSpace(m[1])
		} else {
			result.FreeText = text
		}
	case IntentNavigate:
		for _, r := range routeTable {
			if r.pattern.MatchString(text) {
				result.Route = r.route
				break
			}
		}
	}

	return result
}

// matchPatient scans the roster in two passes. Pass 1: exact full-name
// substring match, first hit returns immediately. Pass 2: first-name
// substring match scored by matched-name length; equal scores keep the
// earlier roster entry, preserving catalog-order tie-breaking.
func matchPatient(text string, roster []PatientRef) (string, uuid.UUID, bool) {
	lower := strings.ToLower(text)

	for _, p := range roster {
		if p.Archived {
			continue
		}
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return p.Name, p.ID, true
		}
	}

	var best *PatientRef
	bestLen := 0
	for i := range roster {
		p := &roster[i]
		if p.Archived {
			continue
		}
		first := strings.ToLower(firstName(p.Name))
		if first == "" || !containsWord(lower, first) {
			continue
		}
		if len(first) > bestLen {
			best = p
			bestLen = len(first)
		}
	}
	if best != nil {
		return best.Name, best.ID, true
	}
	return "", uuid.Nil, false
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:idx])
		next, _ := utf8.DecodeRuneInString(text[idx+len(word):])
		if !unicode.IsLetter(prev) && !unicode.IsLetter(next) {
			return true
		}
		rest := strings.Index(text[idx+1:], word)
		if rest < 0 {
			return false
		}
		idx = idx + 1 + rest
	}
	return false
}

// extractDate applies the fixed precedence: hoje, depois de amanhã, amanhã,
// named weekday, "dia D[/M]", bare "D/M". The longer "depois de amanhã"
// literal is tested before "amanhã" so it cannot be shadowed. Past dates roll
// forward: day-only to the next month, day/month to the next year.
func extractDate(text string, now time.Time) (string, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if reToday.MatchString(text) {
		return today.Format(isoDate), true
	}
	if reDayAfterNext.MatchString(text) {
		return today.AddDate(0, 0, 2).Format(isoDate), true
	}
	if reTomorrow.MatchString(text) {
		return today.AddDate(0, 0, 1).Format(isoDate), true
	}

	for _, wd := range weekdays {
		if wd.pattern.MatchString(text) {
			delta := (int(wd.day) - int(today.Weekday()) + 7) % 7
			if delta == 0 {
				delta = 7
			}
			return today.AddDate(0, 0, delta).Format(isoDate), true
		}
	}

	if m := reExplicitDay.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		if day >= 1 && day <= 31 {
			if m[2] != "" {
				month, _ := strconv.Atoi(m[2])
				if month >= 1 && month <= 12 {
					return resolveDayMonth(day, month, today), true
				}
			} else {
				candidate := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())
				if candidate.Before(today) {
					candidate = candidate.AddDate(0, 1, 0)
				}
				return candidate.Format(isoDate), true
			}
		}
	}

	if m := reBareDayMonth.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			return resolveDayMonth(day, month, today), true
		}
	}

	return "", false
}

func resolveDayMonth(day, month int, today time.Time) string {
	candidate := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, today.Location())
	if candidate.Before(today) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate.Format(isoDate)
}

// extractTime applies the fixed precedence: "14h30"/"14h", "14:30", "às 14".
func extractTime(text string) (string, bool) {
	if m := reHourCompact.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 24 && minute < 60 {
			return fmt.Sprintf("%02d:%02d", hour, minute), true
		}
	}
	if m := reHourColon.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 24 && minute < 60 {
			return fmt.Sprintf("%02d:%02d", hour, minute), true
		}
	}
	if m := reHourAt.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour < 24 {
			return fmt.Sprintf("%02d:00", hour), true
		}
	}
	return "", false
}
