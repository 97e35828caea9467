package domain

import "errors"

var ErrDuplicateAccount = errors.New("account id already exists")
var ErrAccountNotFound = errors.New("account does not exist")
var ErrInvalidAmount = errors.New("amount is less than zero")
var ErrSameAccount = errors.New("from and to accounts are the same")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrTransferNotProcessed = errors.New("transfer not processed")
var ErrOperationFailed = errors.New("operation failed")
