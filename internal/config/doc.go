// Package config loads morphed CLI configuration.
//
// The configuration lives in morphed.json (or morphed.yaml / morphed.yml)
// at the project root. Values set on the command line override it. The
// morph command reads ignoredAttribute, childrenOnly and render; the ignore
// command reads ignoredAttribute, ids, idPrefix and render.
//
// # Configuration File Structure
//
//	{
//	  "ignoredAttribute": "data-keep",
//	  "childrenOnly": false,
//	  "ids": "counter",
//	  "idPrefix": "morphed-",
//	  "render": {
//	    "minify": true,
//	    "pretty": false,
//	    "indent": "  "
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	view, err := morphed.New(root, update, cfg.ViewOptions()...)
package config
