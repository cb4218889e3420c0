package types

import "errors"

var (
	// ErrDatasetNotReady indica que nenhum payload foi carregado; é o sinal
	// "not ready", nunca confundido com "sem dados no intervalo".
	ErrDatasetNotReady = errors.New("usage dataset is not loaded. Run the usage exporter first")

	// ErrNoExportRows indica que a visão selecionada não tem linhas para
	// exportar; tratado como aviso bloqueante, nenhum arquivo é produzido.
	ErrNoExportRows = errors.New("the selected view has no rows to export")

	// ErrUnknownView indica um nome de visão que não corresponde a nenhum
	// menu nem a um usuário presente no dataset.
	ErrUnknownView = errors.New("unknown report view")
)
