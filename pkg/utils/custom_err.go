package utils

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectArchived      = errors.New("project is archived")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("duplicate provider payment id")
	ErrWrongCredentials     = errors.New("wrong credentials")
	ErrDatabaseError        = errors.New("database error")
)
