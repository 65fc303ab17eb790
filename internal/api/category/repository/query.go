package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			user_id,
			name,
			type,
			color,
			icon,
			is_default,
			description,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:color,
			:icon,
			:is_default,
			:description,
			:created_at,
			:updated_at
		)
	`

	queryGetCategoryByID = `
		SELECT
			id,
			user_id,
			name,
			type,
			color,
			icon,
			is_default,
			description,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id
	`

	queryGetCategoriesForUser = `
		SELECT
			id,
			user_id,
			name,
			type,
			color,
			icon,
			is_default,
			description,
			created_at,
			updated_at
		FROM categories
		WHERE user_id = :user_id OR is_default = TRUE
		ORDER BY is_default DESC, name ASC
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			type = :type,
			color = :color,
			icon = :icon,
			description = :description,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`

	queryCountTransactionReferences = `
		SELECT COUNT(*) FROM transactions WHERE category_id = :category_id
	`

	queryCountBillReferences = `
		SELECT COUNT(*) FROM bills WHERE category_id = :category_id
	`
)
