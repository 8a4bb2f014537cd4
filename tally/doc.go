// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally derives aggregate results from an election snapshot.

Every function is a pure computation over election.Snapshot: counts come
from the ballot ledger each time, so there is no stored counter to go
stale.

# Ordering Policy

Tally rows sort by vote count descending. Ties break by candidate
registration order (the snapshot's candidate order), so two runs over the
same ballots always produce the same ranking. Leader applies the same
rule: among tied leaders, the earliest-registered candidate wins.

# Deactivated Candidates

Tally and Report cover active candidates only; TallyAll includes the
rest. TotalVotes always counts every cast ballot, including ballots for
since-deactivated candidates.

# Export

ExportCSV writes rows of

	Candidate Name,Department,Votes,Percentage

with percentages to two decimal places, or the literal "0%" when no
ballots exist.
*/
package tally
