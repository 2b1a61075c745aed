package handler

import "messagehub/backend/internal/storage"

// Handler carries the relay store shared by all routes.
type Handler struct {
	Store storage.Store
}

func NewHandler(s storage.Store) *Handler {
	return &Handler{Store: s}
}
