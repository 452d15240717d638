/*
Package config loads rules files for xed apply.

	            +-------------+
	            |    Rules    |
	            | (Pipeline)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Reads a list of replace/delete rules from a file
- Picks the parser from the file extension
- Validates rules before any input is touched
- Builds a text.Pipeline from the rules

🔄 Flow:
1. Load reads the file and finds a parser
2. The parser decodes the format, rejecting unknown fields
3. Validate checks patterns, globs and flags
4. Pipeline compiles every pattern and replacement once

📝 YAML:

	exclude: ["vendor/**", "*.bak"]
	rules:
	  - name: strip-todo
	    pattern: "^// TODO[^\n]*\n"
	    delete: true
	  - pattern: 'foo(\d)'
	    replacement: 'bar\1'
	    files: ["*.go"]

📝 HCL (nl and tab are predefined):

	exclude = ["vendor/**", "*.bak"]

	rule "strip-todo" {
	  pattern = "^// TODO[^${nl}]*${nl}"
	  delete  = true
	}

🔍 Example:

	rules, err := config.Load(ctx, ".xed.yaml")
	if err != nil {
		return err
	}
	pipeline, err := rules.Pipeline()
*/
package config
