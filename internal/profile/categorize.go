package profile

import "github.com/nmbt2910/iheartev-sub001/internal/domain"

// Buckets holds transactions partitioned by status. Every input transaction
// lands in exactly one bucket; statuses outside the known set go to Other so
// nothing is silently dropped.
type Buckets struct {
	Active    []domain.Transaction
	Sold      []domain.Transaction
	Completed []domain.Transaction
	Other     []domain.Transaction
}

// Categorize partitions transactions by their status field as supplied. No
// status normalization is applied; "Sold" and "sold" are different statuses.
func Categorize(txs []domain.Transaction) Buckets {
	var b Buckets
	for _, tx := range txs {
		switch tx.Status {
		case domain.TransactionStatusActive:
			b.Active = append(b.Active, tx)
		case domain.TransactionStatusSold:
			b.Sold = append(b.Sold, tx)
		case domain.TransactionStatusCompleted:
			b.Completed = append(b.Completed, tx)
		default:
			b.Other = append(b.Other, tx)
		}
	}
	return b
}

// Total returns the number of transactions across all buckets.
func (b Buckets) Total() int {
	return len(b.Active) + len(b.Sold) + len(b.Completed) + len(b.Other)
}
