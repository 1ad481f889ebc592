package models

import "time"

// Transaction represents a completed on-chain tip between two users. Type and
// ReferenceID identify the tipped content; an empty Type means a direct
// user-to-user tip.
type Transaction struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Hash        string        `json:"hash,omitempty" bson:"hash,omitempty"`
	From        string        `json:"from" bson:"from"`
	To          string        `json:"to" bson:"to"`
	Amount      float64       `json:"amount" bson:"amount"`
	CurrencyID  string        `json:"currency_id" bson:"currency_id"`
	Type        ReferenceType `json:"type,omitempty" bson:"type,omitempty"`
	ReferenceID string        `json:"reference_id,omitempty" bson:"reference_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}

// CreateTransactionRequest defines the request body for recording a transaction
type CreateTransactionRequest struct {
	Hash        string        `json:"hash,omitempty"`
	To          string        `json:"to" validate:"required"`
	Amount      float64       `json:"amount" validate:"required,gt=0"`
	CurrencyID  string        `json:"currency_id" validate:"required"`
	Type        ReferenceType `json:"type,omitempty" validate:"omitempty,oneof=post comment user"`
	ReferenceID string        `json:"reference_id,omitempty"`
}
