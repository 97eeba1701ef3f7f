package slot

import "github.com/m04kA/SMC-ScheduleService/pkg/txmanager"

// DBExecutor переиспользуем интерфейс исполнителя запросов из txmanager
type DBExecutor = txmanager.DBExecutor
