package billRepository

const (
	queryCreateBill = `
		INSERT INTO bills (
			id,
			user_id,
			name,
			amount,
			due_date,
			frequency,
			autopay,
			notes,
			category_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:amount,
			:due_date,
			:frequency,
			:autopay,
			:notes,
			:category_id,
			:created_at,
			:updated_at
		)
	`

	queryGetBillByID = `
		SELECT
			id,
			user_id,
			name,
			amount,
			due_date,
			frequency,
			autopay,
			notes,
			category_id,
			created_at,
			updated_at
		FROM bills
		WHERE id = :id
	`

	queryGetBillsByUserID = `
		SELECT
			id,
			user_id,
			name,
			amount,
			due_date,
			frequency,
			autopay,
			notes,
			category_id,
			created_at,
			updated_at
		FROM bills
		WHERE user_id = :user_id
		ORDER BY due_date ASC
	`

	queryUpdateBill = `
		UPDATE bills
		SET
			name = :name,
			amount = :amount,
			due_date = :due_date,
			frequency = :frequency,
			autopay = :autopay,
			notes = :notes,
			category_id = :category_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBill = `
		DELETE FROM bills
		WHERE id = :id
	`

	queryCreatePaymentTransaction = `
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
)
