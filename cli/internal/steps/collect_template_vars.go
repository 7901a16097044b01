package steps

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	create_ctx "github.com/dataeng-forge/forge/cli/create/context"
	"github.com/dataeng-forge/forge/cli/internal/app_template"
	"github.com/manifoldco/promptui"
)

// Reader interface is used for reading user input.
type Reader interface {
	readLine() (string, error)
}

// consoleReader implements reading from console.
type consoleReader struct {
	stdinReader *bufio.Reader
}

// readLine reads line from console. New-line symbol is trimmed.
func (consoleReader consoleReader) readLine() (string, error) {
	input, err := consoleReader.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimSuffix(input, "\n"), nil
}

// NewConsoleReader creates new console reader.
func NewConsoleReader() consoleReader {
	return consoleReader{bufio.NewReader(os.Stdin)}
}

// Selector interface is used for selecting a value from a fixed set.
type Selector interface {
	selectValue(prompt string, choices []string, defaultValue string) (string, error)
}

// consoleSelector implements interactive selection from a list.
type consoleSelector struct {
}

// selectValue asks the user to pick one of choices, with the cursor placed
// at the default value.
func (consoleSelector) selectValue(prompt string, choices []string,
	defaultValue string,
) (string, error) {
	cursorPos := 0
	for i, choice := range choices {
		if choice == defaultValue {
			cursorPos = i
			break
		}
	}

	valueSelect := promptui.Select{
		Label:     prompt,
		Items:     choices,
		CursorPos: cursorPos,
	}
	_, value, err := valueSelect.Run()
	if err != nil {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return value, nil
}

// NewConsoleSelector creates new console selector.
func NewConsoleSelector() consoleSelector {
	return consoleSelector{}
}

// isOneOf checks if value belongs to the choices set.
func isOneOf(value string, choices []string) bool {
	for _, choice := range choices {
		if value == choice {
			return true
		}
	}
	return false
}

// CollectTemplateVarsFromUser represents interactive variables collection step.
type CollectTemplateVarsFromUser struct {
	// Reader is used to get free-form user input.
	Reader Reader
	// Selector is used to get a value from a fixed choices list.
	Selector Selector
}

// collectChoiceVar resolves the value of a variable with a fixed choices set.
func (collect CollectTemplateVarsFromUser) collectChoiceVar(createCtx *create_ctx.CreateCtx,
	varInfo app_template.UserPrompt, existingValue string, found bool,
) (string, error) {
	if found {
		if isOneOf(existingValue, varInfo.Choices) {
			return existingValue, nil
		}
		if createCtx.SilentMode {
			return "", fmt.Errorf("invalid value of %s variable: %q is not in choices list",
				varInfo.Name, existingValue)
		}
		fmt.Printf("Invalid value of %s variable: %q is not in choices list.\n",
			varInfo.Name, existingValue)
	}

	if createCtx.SilentMode {
		if varInfo.Default == "" {
			return "", fmt.Errorf("%s variable value is not set", varInfo.Name)
		}
		if !isOneOf(varInfo.Default, varInfo.Choices) {
			return "", fmt.Errorf("invalid default value of %s variable", varInfo.Name)
		}
		return varInfo.Default, nil
	}

	return collect.Selector.selectValue(varInfo.Prompt, varInfo.Choices, varInfo.Default)
}

// collectFreeFormVar resolves the value of a free-form variable with an
// optional validation regexp.
func (collect CollectTemplateVarsFromUser) collectFreeFormVar(createCtx *create_ctx.CreateCtx,
	varInfo app_template.UserPrompt, existingValue string, found bool,
) (string, error) {
	if found {
		if varInfo.Re == "" {
			return existingValue, nil
		}
		matched, err := regexp.MatchString(varInfo.Re, existingValue)
		if err != nil {
			return "", fmt.Errorf("failed to validate user input: %s", err)
		}
		if matched {
			return existingValue, nil
		}
		if createCtx.SilentMode {
			return "", fmt.Errorf("invalid format of %s variable", varInfo.Name)
		}
		fmt.Printf("Invalid format of %s variable.\n", varInfo.Name)
	}

	var input string
	var err error
	matched := false
	for !matched {
		if varInfo.Default == "" {
			if createCtx.SilentMode {
				return "", fmt.Errorf("%s variable value is not set", varInfo.Name)
			}
			fmt.Printf("%s: ", varInfo.Prompt)
		} else {
			if createCtx.SilentMode {
				input = varInfo.Default
			} else {
				fmt.Printf("%s (default: %s): ", varInfo.Prompt, varInfo.Default)
			}
		}

		// User input.
		if !createCtx.SilentMode {
			input, err = collect.Reader.readLine()
			if err != nil {
				return "", fmt.Errorf("error reading user input: %s", err)
			}
		}

		if input == "" {
			if varInfo.Default == "" {
				fmt.Println("Please enter a value.")
				continue
			}
			input = varInfo.Default
		}

		if varInfo.Re == "" {
			matched = true
			continue
		}
		matched, err = regexp.MatchString(varInfo.Re, input)
		if err != nil {
			return "", fmt.Errorf("failed to validate user input: %s", err)
		}
		if !matched {
			if createCtx.SilentMode {
				return "", fmt.Errorf("invalid format of %s variable", varInfo.Name)
			}
			fmt.Println("Invalid format. Try again.")
		}
	}

	return input, nil
}

// Run collects template variables from user in interactive mode.
func (collect CollectTemplateVarsFromUser) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if !templateCtx.IsManifestPresent {
		return nil
	}

	for _, varInfo := range templateCtx.Manifest.Vars {
		existingValue, found := templateCtx.Vars[varInfo.Name]

		var value string
		var err error
		if len(varInfo.Choices) > 0 {
			value, err = collect.collectChoiceVar(createCtx, varInfo, existingValue, found)
		} else {
			value, err = collect.collectFreeFormVar(createCtx, varInfo, existingValue, found)
		}
		if err != nil {
			return err
		}

		templateCtx.Vars[varInfo.Name] = value
	}

	return nil
}
