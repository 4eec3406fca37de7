package appointment

import "github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"

// Reuse the executor interfaces from dbmetrics
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
