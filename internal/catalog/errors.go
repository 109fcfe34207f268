package catalog

import (
	"fmt"

	appErrors "typeahead/internal/errors"
)

func loadError(path string, err error) error {
	return appErrors.New(appErrors.CodeCatalogLoad, fmt.Sprintf("load catalog %s", path), err)
}

func parseError(path string, err error) error {
	return appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("parse catalog %s", path), err)
}

func unsupportedError(path string) error {
	return appErrors.New(appErrors.CodeUnsupported, fmt.Sprintf("unsupported catalog format: %s", path), nil)
}
