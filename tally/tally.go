// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/campus-vote/election"
	"github.com/danielhkuo/campus-vote/models"
)

// Tally counts ballots per active candidate. Rows are ordered by vote
// count descending; ties break by candidate registration order, so output
// is deterministic and reproducible for any ballot set.
func Tally(snap election.Snapshot) []models.TallyRow {
	return tallyRows(snap, true)
}

// TallyAll is Tally including deactivated candidates.
func TallyAll(snap election.Snapshot) []models.TallyRow {
	return tallyRows(snap, false)
}

func tallyRows(snap election.Snapshot, activeOnly bool) []models.TallyRow {
	counts := countBallots(snap)

	rows := []models.TallyRow{}
	for _, c := range snap.Candidates { // registration order
		if activeOnly && c.Status != models.CandidateActive {
			continue
		}
		rows = append(rows, models.TallyRow{
			CandidateID: c.ID,
			Name:        c.Name,
			Votes:       counts[c.ID],
		})
	}

	// Stable sort keeps registration order among equal counts.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Votes > rows[j].Votes
	})
	return rows
}

// Leader returns the active candidate with the highest vote count. Among
// tied leaders the earliest-registered candidate wins. ok is false when no
// ballots have been cast.
func Leader(snap election.Snapshot) (candidateID string, ok bool) {
	if TotalVotes(snap) == 0 {
		return "", false
	}
	rows := Tally(snap)
	if len(rows) == 0 || rows[0].Votes == 0 {
		return "", false
	}
	return rows[0].CandidateID, true
}

// TotalVotes counts every ballot in the ledger, including ballots cast for
// candidates that were deactivated afterwards. Those ballots only drop out
// of the active-candidate breakdown, never out of the total.
func TotalVotes(snap election.Snapshot) int {
	return len(snap.Ballots)
}

// Report builds exportable result rows for active candidates: name,
// department, votes, and percentage of all cast ballots rounded to two
// decimals. Percentages are 0 when no votes exist; there is no
// divide-by-zero path.
func Report(snap election.Snapshot) []models.ReportRow {
	total := TotalVotes(snap)
	rows := []models.ReportRow{}
	for _, tr := range Tally(snap) {
		c := candidateByID(snap, tr.CandidateID)
		pct := 0.0
		if total > 0 {
			pct = roundTwo(float64(tr.Votes) / float64(total) * 100)
		}
		rows = append(rows, models.ReportRow{
			Name:       c.Name,
			Department: c.Department,
			Votes:      tr.Votes,
			Percentage: pct,
		})
	}
	return rows
}

// ExportCSV serializes the report. Header and formatting mirror the
// results download: two-decimal percentages, a literal "0%" when no votes
// have been cast.
func ExportCSV(snap election.Snapshot) string {
	total := TotalVotes(snap)

	var sb strings.Builder
	sb.WriteString("Candidate Name,Department,Votes,Percentage\n")
	for _, row := range Report(snap) {
		pct := "0%"
		if total > 0 {
			pct = fmt.Sprintf("%.2f%%", row.Percentage)
		}
		sb.WriteString(csvField(row.Name))
		sb.WriteByte(',')
		sb.WriteString(csvField(row.Department))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(row.Votes))
		sb.WriteByte(',')
		sb.WriteString(pct)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func countBallots(snap election.Snapshot) map[string]int {
	counts := make(map[string]int, len(snap.Candidates))
	for _, b := range snap.Ballots {
		counts[b.CandidateID]++
	}
	return counts
}

func candidateByID(snap election.Snapshot, id string) models.Candidate {
	for _, c := range snap.Candidates {
		if c.ID == id {
			return c
		}
	}
	return models.Candidate{}
}

func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func roundTwo(f float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	return v
}
