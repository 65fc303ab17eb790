package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			id,
			user_id,
			name,
			amount,
			start_date,
			end_date,
			timeframe,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:amount,
			:start_date,
			:end_date,
			:timeframe,
			:created_at,
			:updated_at
		)
	`

	queryGetBudgetByID = `
		SELECT
			id,
			user_id,
			name,
			amount,
			start_date,
			end_date,
			timeframe,
			created_at,
			updated_at
		FROM budgets
		WHERE id = :id
	`

	queryGetBudgetsByUserID = `
		SELECT
			id,
			user_id,
			name,
			amount,
			start_date,
			end_date,
			timeframe,
			created_at,
			updated_at
		FROM budgets
		WHERE user_id = :user_id
		ORDER BY start_date DESC
	`

	// The most recently started budget of the timeframe whose window covers
	// the reference instant.
	queryGetActiveBudget = `
		SELECT
			id,
			user_id,
			name,
			amount,
			start_date,
			end_date,
			timeframe,
			created_at,
			updated_at
		FROM budgets
		WHERE user_id = :user_id
			AND timeframe = :timeframe
			AND start_date <= :at
			AND end_date >= :at
		ORDER BY start_date DESC
		LIMIT 1
	`

	queryUpdateBudget = `
		UPDATE budgets
		SET
			name = :name,
			amount = :amount,
			start_date = :start_date,
			end_date = :end_date,
			timeframe = :timeframe,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBudget = `
		DELETE FROM budgets
		WHERE id = :id
	`

	queryCreateAllocation = `
		INSERT INTO budget_allocations (
			id,
			budget_id,
			category_id,
			amount
		) VALUES (
			:id,
			:budget_id,
			:category_id,
			:amount
		)
	`

	queryGetAllocations = `
		SELECT
			id,
			budget_id,
			category_id,
			amount
		FROM budget_allocations
		WHERE budget_id = :budget_id
		ORDER BY category_id
	`

	queryDeleteAllocations = `
		DELETE FROM budget_allocations
		WHERE budget_id = :budget_id
	`
)
