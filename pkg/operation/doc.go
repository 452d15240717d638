/*
Package operation routes transform output to where it belongs.

	+-------------+
	|  Selector   |
	| (paths)     |
	+------+------+
	       |
	+------+------+
	|  Transform  |
	| (pkg/text)  |
	+------+------+
	       |
	+------+------+------------+
	|   stdout    |  in place  |
	|             | (atomic)   |
	+-------------+------------+

🎯 Purpose:
- Reads each input in full, one at a time, in sorted order
- Hands the content to a text.Transformer or text.Matcher
- Writes the result to standard output or back onto the file

🔄 Flow (modify):
1. No paths: standard input in, standard output out
2. Paths: every selected file is transformed and written to standard output, concatenated
3. Paths with in-place: every selected file is rewritten through pkg/atomicfile

🔍 Flow (search):
1. Every selected file is read and tested
2. Matching paths are printed sorted, one per line
3. No matches prints nothing at all

⚡ Failure semantics:
- A path that is not a regular file is a warning, never an error
- A selected file that cannot be read or written stops the whole run with a *FileError
- Files already rewritten in place stay rewritten; later files are not touched
- Cancellation is checked before every file and before every rename

🔍 Example:

	router, err := operation.New(operation.Options{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Logger:  logger,
		InPlace: true,
	})
	err = router.Modify(ctx, text.NewDeleter(p), []string{"a.txt", "b.txt"})
*/
package operation
