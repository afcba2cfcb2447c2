package entity

import (
	"context"
	"time"
)

type Lead struct {
	ID        int64     `json:"id"`
	FName     string    `json:"fname"`
	LName     string    `json:"lname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Zipcode   string    `json:"zipcode"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadRepositoryInterface interface {

	// CreateTable bootstraps the customer_leads table. Safe to call on
	// every process start.
	CreateTable(ctx context.Context) error

	Insert(ctx context.Context, lead *Lead) error

	// InsertBatch writes all leads as one multi-row statement.
	InsertBatch(ctx context.Context, leads []*Lead) error
}
