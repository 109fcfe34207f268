package selection

import appErrors "typeahead/internal/errors"

func configError(msg string) error {
	return appErrors.New(appErrors.CodeConfigurationError, msg, nil)
}

func initialSelectionError(err error) error {
	return appErrors.New(appErrors.CodeOf(err), "resolve initial selection", err)
}
