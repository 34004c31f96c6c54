package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const mainMenu = `List of Commands:
1 - Show all records in the address book.
2 - Show records in parts (paginated).
3 - Find data in the address book by a search string.
4 - Edit data for a specific record.
5 - Add a new record to the address book.
6 - Delete a specific record from the address book.
7 - Save data in file.
8 - Find who owns a phone number.
hello - Display a welcome message.
good bye, close, exit - Save the address book to a file and exit the program.`

const editMenu = `Choice command:
find phone
add phone
edit phone
remove phone
set birthday
days to birthday
back`

const createMenu = `Choice command:
add phone
add bd
back
save record`

func (s *Shell) printMenu() {
	title, rest, _ := strings.Cut(mainMenu, "\n")
	s.println(s.styles.title.Render(title))
	s.println(rest)
}

// ask prompts inside a command. End of input saves the book and ends the
// session with errQuit.
func (s *Shell) ask(label string) (string, error) {
	answer, err := s.prompt(label)
	if errors.Is(err, io.EOF) {
		if qerr := s.quit(); qerr != nil {
			return "", qerr
		}
		return "", errQuit
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return answer, nil
}

func (s *Shell) listAll() {
	for _, r := range s.book.Records() {
		s.println(r)
	}
}

func (s *Shell) listPages() {
	for n, page := range s.book.Pages(s.pageSize) {
		s.println(s.styles.page.Render(fmt.Sprintf("Page %d", n)))
		for _, r := range page {
			s.println(r)
		}
	}
}

func (s *Shell) search() error {
	query, err := s.ask("Enter a search data: ")
	if err != nil {
		return err
	}
	found, err := s.finder.Search(query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(found) == 0 {
		s.println("This data is not found.")
		return nil
	}
	s.println("Found users:")
	for _, r := range found {
		s.printRecordDetail(r)
	}
	return nil
}

func (s *Shell) printRecordDetail(r *types.Record) {
	phones := make([]string, 0, len(r.Phones()))
	for _, p := range r.Phones() {
		phones = append(phones, p.String())
	}
	birthday := types.BirthdayNotSet
	if b, ok := r.Birthday(); ok {
		birthday = b.String()
	}
	s.printf("Name: %s\n", r.Name())
	s.printf("Phones: %s\n", strings.Join(phones, ", "))
	s.printf("Birthday: %s\n", birthday)
}

func (s *Shell) phoneOwner() error {
	phone, err := s.ask("Enter the phone number to look up: ")
	if err != nil {
		return err
	}
	name, err := s.finder.FindByPhone(phone)
	if errors.Is(err, types.ErrPhoneNotFound) {
		s.printf("Phone %s is not found\n", phone)
		return nil
	}
	if err != nil {
		return fmt.Errorf("find phone: %w", err)
	}
	s.printf("Phone %s belongs to %s\n", phone, name)
	return nil
}

func (s *Shell) deleteRecord() error {
	name, err := s.ask("Enter the name of the record you want to delete: ")
	if err != nil {
		return err
	}
	if err := s.book.Delete(name); err != nil {
		s.printf("%s is not in the AddressBook\n", name)
		return nil
	}
	s.printf("%s has been deleted from the AddressBook\n", name)
	return nil
}

// editRecord runs the edit sub-menu for an existing record until back.
func (s *Shell) editRecord() error {
	name, err := s.ask("Input name of the record to edit --> ")
	if err != nil {
		return err
	}
	r, ok := s.book.Find(name)
	if !ok {
		s.printf("%s is not in the AddressBook\n", name)
		return nil
	}

	for {
		s.println(editMenu)
		choice, err := s.ask(">>> ")
		if err != nil {
			return err
		}
		switch choice {
		case "find phone":
			phone, err := s.ask("Enter the phone number to find:\n")
			if err != nil {
				return err
			}
			if p, ok := r.FindPhone(phone); ok {
				s.printf("Phone number of %s: %s\n", r.Name(), p)
			} else {
				s.printf("Phone number not found for %s\n", r.Name())
			}
		case "add phone":
			phone, err := s.ask("Phone --> ")
			if err != nil {
				return err
			}
			if err := r.AddPhone(phone); err != nil {
				s.printError("Invalid phone number. Phone not added.")
			} else {
				s.printf("Phone added for %s\n", r.Name())
			}
		case "edit phone":
			oldPhone, err := s.ask("Enter the phone number you want to change:\n")
			if err != nil {
				return err
			}
			newPhone, err := s.ask("Enter a new phone number:\n")
			if err != nil {
				return err
			}
			if err := r.EditPhone(oldPhone, newPhone); err != nil {
				s.printError("Invalid input. Phone not updated.")
			} else {
				s.printf("Phone number updated for %s\n", r.Name())
			}
		case "remove phone":
			phone, err := s.ask("Enter the phone number you want to delete:\n")
			if err != nil {
				return err
			}
			if err := r.RemovePhone(phone); err != nil {
				s.printf("Phone %s is not found\n", phone)
			} else {
				s.printf("Phone %s has been deleted\n", phone)
			}
		case "set birthday":
			if err := s.askBirthday(r); err != nil {
				return err
			}
		case "days to birthday":
			days, err := r.DaysToBirthday(s.now())
			if err != nil {
				s.println("Birthday not set")
			} else {
				s.printf("%d days before the birthday\n", days)
			}
		case "back":
			return nil
		default:
			s.printError("Error command!")
		}
	}
}

// createRecord builds a new record in the create sub-menu. The record
// enters the book on save record, or on back when the user confirms.
func (s *Shell) createRecord() error {
	name, err := s.ask("Input new name --> ")
	if err != nil {
		return err
	}
	r, err := types.NewRecord(name, "")
	if err != nil {
		s.printError("Invalid name. Record not created.")
		return nil
	}

	for {
		s.println(createMenu)
		choice, err := s.ask(">>> ")
		if err != nil {
			return err
		}
		switch choice {
		case "add phone":
			phone, err := s.ask("Phone --> ")
			if err != nil {
				return err
			}
			if err := r.AddPhone(phone); err != nil {
				s.printError("Invalid phone number. Phone not added.")
			} else {
				s.printf("Phone added for %s\n", r.Name())
			}
		case "add bd":
			if err := s.askBirthday(r); err != nil {
				return err
			}
		case "save record":
			s.book.Add(r)
			s.printf("Record saved for %s\n", r.Name())
		case "back":
			answer, err := s.ask("Do you want to save data? (y): ")
			if err != nil {
				return err
			}
			if strings.EqualFold(answer, "y") {
				s.book.Add(r)
				s.printf("Record saved for %s\n", r.Name())
			}
			return nil
		default:
			s.printError("Error command!")
		}
	}
}

func (s *Shell) askBirthday(r *types.Record) error {
	raw, err := s.ask("BD (Y-m-d) --> ")
	if err != nil {
		return err
	}
	if err := r.SetBirthday(raw); err != nil {
		s.printError("Invalid date. Birthday not added.")
		return nil
	}
	s.printf("Birthday added for %s\n", r.Name())
	return nil
}
