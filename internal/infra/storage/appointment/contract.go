package appointment

import "github.com/m04kA/barbershop-booking/pkg/dbmetrics"

// DBExecutor переиспользует интерфейс из dbmetrics: *dbmetrics.DB или транзакция из контекста
type DBExecutor = dbmetrics.DBExecutor
