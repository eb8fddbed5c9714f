/*
Package config manages the optional project configuration for lktk.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Locates .lktk.yaml / .lktk.yml / .lktk.hcl / .lktk.json in the working directory
- Parses the format picked by file extension
- Overlays the values found on top of the defaults
- Validates extension, exclude globs and replacement rules

🔍 Example (.lktk.yaml):

	extension: .lkml
	exclude:
	  - "generated/**"
	continue_on_error: false
	format:
	  trim_trailing_whitespace: true
	  final_newline: true
	  max_blank_lines: 1
	rules:
	  - from: "sql_table_name: legacy."
	    to: "sql_table_name: analytics."
	    files: "*.view.lkml"

The same settings in HCL use a repeated "rule" block:

	extension = default_extension
	format {
	  max_blank_lines = 2
	}
	rule {
	  from  = "\t"
	  to    = "  "
	}
*/
package config
