package jobs

import (
	"context"

	"koriel-backend/internal/logger"
)

// RepairLoanTotals recomputes pending_total for every loan where it drifted
// from pending_quantity * unit_price. Drift should never happen through the
// API, which recomputes the pair in one statement, but a manual correction or
// a bug can introduce it; this job makes the ledger self-healing.
func (jr *JobRunner) RepairLoanTotals() {
	jr.runWithRecovery("RepairLoanTotals", func() {
		ctx := context.Background()

		repaired, err := jr.store.LoanRepository.RepairDriftedTotals(ctx)
		logger.DatabaseResult("repair_loan_totals", repaired, err)
		if err != nil {
			logger.Error("Failed to repair drifted loan totals", "error", err)
			return
		}
		if repaired > 0 {
			logger.Warn("Repaired drifted loan totals", "count", repaired)
		}
	})
}

// VerifyEventLedger checks the ledger's conservation law: for every loan,
// quantity granted must equal pending_quantity plus the quantities of its
// surviving settlement events (reversed events restore pending before they
// are removed, so they cancel out). It also checks that no stock balance went
// negative. Violations are logged, never auto-repaired: a broken conservation
// law means data was touched outside the API and a human has to look.
func (jr *JobRunner) VerifyEventLedger() {
	jr.runWithRecovery("VerifyEventLedger", func() {
		ctx := context.Background()

		query := `
			SELECT l.id, l.quantity, l.pending_quantity, COALESCE(SUM(e.quantity), 0)
			FROM loans l
			LEFT JOIN settlement_events e ON e.loan_id = l.id
			GROUP BY l.id, l.quantity, l.pending_quantity
			HAVING l.quantity <> l.pending_quantity + COALESCE(SUM(e.quantity), 0)
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to verify loan conservation", "error", err)
			return
		}
		defer rows.Close()

		violations := 0
		for rows.Next() {
			var loanID, quantity, pending, settled int64
			if err := rows.Scan(&loanID, &quantity, &pending, &settled); err != nil {
				logger.Error("Failed to scan conservation violation", "error", err)
				continue
			}
			violations++
			logger.Error("Loan conservation violated",
				"loan_id", loanID,
				"quantity", quantity,
				"pending_quantity", pending,
				"settled_quantity", settled)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating conservation violations", "error", err)
			return
		}

		// The quantity >= 0 CHECK constraint should make this unreachable.
		var negativeBalances int64
		err = jr.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM stock_balances WHERE quantity < 0`).Scan(&negativeBalances)
		if err != nil {
			logger.Error("Failed to verify stock balances", "error", err)
			return
		}
		if negativeBalances > 0 {
			logger.Error("Negative stock balances found", "count", negativeBalances)
		}

		if violations == 0 && negativeBalances == 0 {
			logger.Info("Ledger verification passed")
		}
	})
}
