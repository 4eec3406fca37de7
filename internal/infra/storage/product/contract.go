package product

import "github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
