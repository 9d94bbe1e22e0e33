/* Copyright 2025 Notevault Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/notevault/notevault/pkg/prompt"
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/log"
	"github.com/pkg/errors"
)

// confirm prompts for user input to confirm a choice
func confirm(r io.Reader, question string, optimistic bool) (bool, error) {
	message := prompt.FormatQuestion(question, optimistic)
	fmt.Print(message + " ")

	confirmed, err := prompt.ReadYesNo(r, optimistic)
	if err != nil {
		return false, errors.Wrap(err, "reading stdin")
	}

	return confirmed, nil
}

func userCreateCmd(args []string) {
	fs := setupFlagSet("create", "notevault-server user create")

	userID := fs.String("id", "", "User ID (required; stored uppercase)")
	password := fs.String("password", "", "User password (required)")
	databaseURL := fs.String("databaseUrl", "", "SQLite file path or postgres:// URL (env: DATABASE_URL, default: $XDG_DATA_HOME/notevault/server.db)")

	fs.Parse(args)

	requireString(fs, *userID, "id")
	requireString(fs, *password, "password")

	a, cleanup := setupAppWithDB(fs, *databaseURL)
	defer cleanup()

	user, err := a.CreateUser(*userID, *password)
	if err != nil {
		log.ErrorWrap(err, "creating user")
		os.Exit(1)
	}

	fmt.Printf("User created successfully\n")
	fmt.Printf("ID: %s\n", user.ID)
}

func userRemoveCmd(args []string, stdin io.Reader) {
	fs := setupFlagSet("remove", "notevault-server user remove")

	userID := fs.String("id", "", "User ID (required)")
	databaseURL := fs.String("databaseUrl", "", "SQLite file path or postgres:// URL (env: DATABASE_URL, default: $XDG_DATA_HOME/notevault/server.db)")

	fs.Parse(args)

	requireString(fs, *userID, "id")

	a, cleanup := setupAppWithDB(fs, *databaseURL)
	defer cleanup()

	// Check if user exists first
	user, err := a.GetUser(*userID)
	if err != nil {
		if errors.Is(errors.Cause(err), app.ErrNotFound) {
			fmt.Printf("Error: user %s not found\n", *userID)
		} else {
			log.ErrorWrap(err, "finding user")
		}
		os.Exit(1)
	}

	ok, err := confirm(stdin, fmt.Sprintf("Remove user %s and everything the user owns?", user.ID), false)
	if err != nil {
		log.ErrorWrap(err, "getting confirmation")
		os.Exit(1)
	}
	if !ok {
		fmt.Println("Aborted by user")
		os.Exit(0)
	}

	if _, err := a.PurgeUser(user.ID); err != nil {
		if errors.Is(errors.Cause(err), app.ErrForbidden) {
			fmt.Printf("Error: the %s account cannot be removed\n", user.ID)
		} else {
			log.ErrorWrap(err, "removing user")
		}
		os.Exit(1)
	}

	fmt.Printf("User removed successfully\n")
	fmt.Printf("ID: %s\n", user.ID)
}

func userCmd(args []string) {
	if len(args) < 1 {
		fmt.Println(`Usage:
  notevault-server user [command]

Available commands:
  create: Create a new user
  remove: Remove a user and everything the user owns`)
		os.Exit(1)
	}

	subcommand := args[0]
	subArgs := []string{}
	if len(args) > 1 {
		subArgs = args[1:]
	}

	switch subcommand {
	case "create":
		userCreateCmd(subArgs)
	case "remove":
		userRemoveCmd(subArgs, os.Stdin)
	default:
		fmt.Printf("Unknown subcommand: %s\n\n", subcommand)
		fmt.Println(`Available commands:
  create: Create a new user
  remove: Remove a user and everything the user owns`)
		os.Exit(1)
	}
}
