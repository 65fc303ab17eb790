package planRepository

const (
	queryCreatePlanItem = `
		INSERT INTO plan_items (
			id,
			user_id,
			description,
			amount,
			category_id,
			notes,
			plan_type,
			item_type,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:description,
			:amount,
			:category_id,
			:notes,
			:plan_type,
			:item_type,
			:created_at,
			:updated_at
		)
	`

	queryGetPlanItemByID = `
		SELECT
			id,
			user_id,
			description,
			amount,
			category_id,
			notes,
			plan_type,
			item_type,
			created_at,
			updated_at
		FROM plan_items
		WHERE id = :id
	`

	queryGetPlanItemsByUserAndType = `
		SELECT
			id,
			user_id,
			description,
			amount,
			category_id,
			notes,
			plan_type,
			item_type,
			created_at,
			updated_at
		FROM plan_items
		WHERE user_id = :user_id AND plan_type = :plan_type
		ORDER BY created_at ASC
	`

	queryGetSavingsItemsByUserID = `
		SELECT
			id,
			user_id,
			description,
			amount,
			category_id,
			notes,
			plan_type,
			item_type,
			created_at,
			updated_at
		FROM plan_items
		WHERE user_id = :user_id AND item_type = 'savings'
		ORDER BY created_at ASC
	`

	queryUpdatePlanItem = `
		UPDATE plan_items
		SET
			description = :description,
			amount = :amount,
			category_id = :category_id,
			notes = :notes,
			item_type = :item_type,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeletePlanItem = `
		DELETE FROM plan_items
		WHERE id = :id
	`

	queryDeletePlanItemsByUserAndType = `
		DELETE FROM plan_items
		WHERE user_id = :user_id AND plan_type = :plan_type
	`
)
