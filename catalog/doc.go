// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog loads poll definitions from the JSON configuration file.

# File Format

	{
	  "active": true,
	  "polls": [
	    {
	      "id": "lunch",
	      "title": "Team lunch",
	      "question": "Where should we eat?",
	      "answers": [
	        {"id": "pizza", "text": "Pizza"},
	        {"id": "sushi", "text": "Sushi"}
	      ]
	    }
	  ]
	}

# Reload Semantics

Load re-reads the file on every call. There is no caching layer, so an
operator can flip "active" or edit poll text and the next request sees
the change. Requests are independent: the config a handler loads at the
top of a request stays consistent for that request.

# Errors

  - ErrConfigMissing: file absent or unreadable — fatal for page loads
  - ErrConfigParse: invalid JSON — fatal for page loads

Poll lookups that find nothing return nil without an error; handlers
turn that into a redirect to the poll list.
*/
package catalog
