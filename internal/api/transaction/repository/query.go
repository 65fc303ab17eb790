package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			amount,
			type,
			date,
			category_id,
			bill_id,
			description,
			notes,
			receipt_link,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:amount,
			:type,
			:date,
			:category_id,
			:bill_id,
			:description,
			:notes,
			:receipt_link,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			amount,
			type,
			date,
			category_id,
			bill_id,
			description,
			notes,
			receipt_link,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id
	`

	// Base of the filtered list query; optional clauses are appended per
	// filter field that is present, then ordering and limit.
	queryGetTransactionsBase = `
		SELECT
			id,
			user_id,
			amount,
			type,
			date,
			category_id,
			bill_id,
			description,
			notes,
			receipt_link,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id
	`

	queryGetRecentExpenses = `
		SELECT
			id,
			user_id,
			amount,
			type,
			date,
			category_id,
			bill_id,
			description,
			notes,
			receipt_link,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id AND type = 'expense'
		ORDER BY date DESC
		LIMIT :limit
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			amount = :amount,
			type = :type,
			date = :date,
			category_id = :category_id,
			description = :description,
			notes = :notes,
			receipt_link = :receipt_link,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
