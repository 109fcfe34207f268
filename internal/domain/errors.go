package domain

import (
	"fmt"

	appErrors "typeahead/internal/errors"
)

func invalidItemError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidItem, reason, nil)
}

func duplicateItemError(id string) error {
	return appErrors.New(appErrors.CodeDuplicateItem, fmt.Sprintf("duplicate item id: %s", id), nil)
}

func newNotFound(msg string) error {
	return appErrors.New(appErrors.CodeNotFound, msg, nil)
}
