package txmanager

import "errors"

var (
	// ErrBeginTx возвращается, когда не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommit возвращается, когда не удалось зафиксировать транзакцию
	ErrCommit = errors.New("txmanager: failed to commit transaction")

	// ErrRollback возвращается, когда не удалось откатить транзакцию
	ErrRollback = errors.New("txmanager: failed to rollback transaction")

	// ErrRetriesExhausted возвращается, когда все повторы сериализуемой транзакции закончились конфликтом
	ErrRetriesExhausted = errors.New("txmanager: serialization retries exhausted")
)
