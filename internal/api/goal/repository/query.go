package goalRepository

const (
	queryCreateGoal = `
		INSERT INTO savings_goals (
			id,
			user_id,
			name,
			target_amount,
			current_amount,
			target_date,
			completed,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:target_amount,
			:current_amount,
			:target_date,
			:completed,
			:notes,
			:created_at,
			:updated_at
		)
	`

	queryGetGoalByID = `
		SELECT
			id,
			user_id,
			name,
			target_amount,
			current_amount,
			target_date,
			completed,
			notes,
			created_at,
			updated_at
		FROM savings_goals
		WHERE id = :id
	`

	queryGetGoalsByUserID = `
		SELECT
			id,
			user_id,
			name,
			target_amount,
			current_amount,
			target_date,
			completed,
			notes,
			created_at,
			updated_at
		FROM savings_goals
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateGoal = `
		UPDATE savings_goals
		SET
			name = :name,
			target_amount = :target_amount,
			current_amount = :current_amount,
			target_date = :target_date,
			completed = :completed,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteGoal = `
		DELETE FROM savings_goals
		WHERE id = :id
	`
)
