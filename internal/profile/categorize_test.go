package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
)

func TestCategorize(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "t1", Status: domain.TransactionStatusActive},
		{ID: "t2", Status: domain.TransactionStatusSold},
		{ID: "t3", Status: domain.TransactionStatusCompleted},
		{ID: "t4", Status: domain.TransactionStatusActive},
		{ID: "t5", Status: "refunded"},
		{ID: "t6", Status: ""},
	}

	b := Categorize(txs)

	assert.Len(t, b.Active, 2)
	assert.Len(t, b.Sold, 1)
	assert.Len(t, b.Completed, 1)
	assert.Len(t, b.Other, 2)
	assert.Equal(t, len(txs), b.Total())
}

func TestCategorizeEmpty(t *testing.T) {
	b := Categorize(nil)
	assert.Empty(t, b.Active)
	assert.Empty(t, b.Sold)
	assert.Empty(t, b.Completed)
	assert.Empty(t, b.Other)
	assert.Zero(t, b.Total())
}

func TestCategorizeCaseSensitive(t *testing.T) {
	b := Categorize([]domain.Transaction{{ID: "t1", Status: "Sold"}})
	assert.Empty(t, b.Sold)
	assert.Len(t, b.Other, 1)
}

func TestCategorizePartition(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "a", Status: domain.TransactionStatusSold},
		{ID: "b", Status: "weird"},
		{ID: "c", Status: domain.TransactionStatusCompleted},
		{ID: "d", Status: domain.TransactionStatusActive},
	}

	b := Categorize(txs)

	seen := make(map[string]int)
	for _, bucket := range [][]domain.Transaction{b.Active, b.Sold, b.Completed, b.Other} {
		for _, tx := range bucket {
			seen[tx.ID]++
		}
	}

	assert.Len(t, seen, len(txs))
	for id, count := range seen {
		assert.Equal(t, 1, count, "transaction %s appears in exactly one bucket", id)
	}
}
