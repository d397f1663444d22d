package contract

// ImportRequest names the data files to load into the student store.
type ImportRequest struct {
	StudentsPath string
}

// ImportResult reports what an import run did.
type ImportResult struct {
	StudentsImported int
	StudentsSkipped  int
	Warnings         []string
}
