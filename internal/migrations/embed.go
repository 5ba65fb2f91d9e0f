package migrations

import "embed"

// Las migraciones viajan embebidas en el binario, así goose las
// encuentra sin importar el directorio de trabajo del proceso.
//
//go:embed *.go
var FS embed.FS
