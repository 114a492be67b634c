package repository

import (
	"context"
	"fmt"

	"github.com/tavolo/tavolo/internal/model"
)

// faqRow is one row of the category/FAQ join. Title and Text are nil
// for categories without any FAQs (LEFT JOIN misses).
type faqRow struct {
	CategoryID   int64
	CategoryName string
	Title        *string
	Text         *string
}

// ListFAQGroups fetches every FAQ category together with its FAQs in a
// single join and folds the rows into one group per category. The join
// is one query, so the parent/child pairing reflects one snapshot.
func (r *Repository) ListFAQGroups(ctx context.Context) ([]model.FAQGroup, error) {
	query := `
		SELECT c.id, c.name, f.title, f.text
		FROM category_faq c
		LEFT JOIN faq f ON f.category_faq_id = c.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var joined []faqRow
	for rows.Next() {
		var row faqRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Title, &row.Text); err != nil {
			return nil, fmt.Errorf("failed to scan faq row: %w", err)
		}
		joined = append(joined, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faqs: %w", err)
	}

	return groupFAQRows(joined), nil
}

// groupFAQRows folds join rows into one group per category, preserving
// the order rows came back in. Categories first seen without a joined
// FAQ keep an empty (non-nil) items list.
func groupFAQRows(rows []faqRow) []model.FAQGroup {
	groups := []model.FAQGroup{}
	index := map[int64]int{}

	for _, row := range rows {
		i, seen := index[row.CategoryID]
		if !seen {
			i = len(groups)
			index[row.CategoryID] = i
			groups = append(groups, model.FAQGroup{
				Name:  row.CategoryName,
				Items: []model.FAQEntry{},
			})
		}

		if row.Title == nil || row.Text == nil {
			continue
		}

		groups[i].Items = append(groups[i].Items, model.FAQEntry{
			Title: *row.Title,
			Text:  *row.Text,
		})
	}

	return groups
}
