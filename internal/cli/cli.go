// Package cli implements the interactive text-menu surface. It owns no
// business rules: every choice is translated into a service call and
// every business failure into its user-facing message. Only storage
// failures escape Run, where the caller terminates the program.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"cardbank/internal/domain"
	"cardbank/internal/errors"
	"cardbank/internal/service"
)

type CLI struct {
	issuer  *service.Issuer
	auth    *service.AuthService
	session *service.SessionService
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

func New(
	issuer *service.Issuer,
	auth *service.AuthService,
	session *service.SessionService,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *CLI {
	return &CLI{
		issuer:  issuer,
		auth:    auth,
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run drives the top-level menu until the user exits or input ends.
func (c *CLI) Run() error {
	for {
		fmt.Fprintln(c.out, "1. Create an account\n2. Log into account\n0. Exit")

		choice, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out, "Bye!")
			return nil
		}

		switch choice {
		case "1":
			if err := c.createAccount(); err != nil {
				return err
			}
		case "2":
			exit, err := c.logIn()
			if err != nil {
				return err
			}
			if exit {
				return nil
			}
		case "0":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		}
	}
}

func (c *CLI) createAccount() error {
	number, pin, err := c.issuer.Issue()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Your card has been created")
	fmt.Fprintf(c.out, "Your card number:\n%s\n", number)
	fmt.Fprintf(c.out, "Your card PIN:\n%s\n", pin)
	return nil
}

func (c *CLI) logIn() (exit bool, err error) {
	fmt.Fprintln(c.out, "Enter your card number:")
	number, ok := c.readLine()
	if !ok {
		return true, nil
	}
	fmt.Fprintln(c.out, "Enter your PIN:")
	pin, ok := c.readLine()
	if !ok {
		return true, nil
	}

	card, err := c.auth.Authenticate(number, pin)
	if err != nil {
		if errors.CodeOf(err) == errors.AuthFailed {
			fmt.Fprintln(c.out, "Wrong card number or PIN!")
			return false, nil
		}
		return false, err
	}

	fmt.Fprintln(c.out, "You have successfully logged in!")
	return c.loggedInLoop(card)
}

func (c *CLI) loggedInLoop(card *domain.Card) (exit bool, err error) {
	for {
		fmt.Fprintln(c.out, "1. Balance\n2. Add income\n3. Do transfer\n4. Close account\n5. Log out\n0. Exit")

		choice, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out, "Bye!")
			return true, nil
		}

		switch choice {
		case "1":
			balance, err := c.session.Balance(card)
			if err != nil {
				return false, err
			}
			fmt.Fprintf(c.out, "Balance: %d\n", balance)
		case "2":
			if err := c.addIncome(card); err != nil {
				return false, err
			}
		case "3":
			if err := c.transfer(card); err != nil {
				return false, err
			}
		case "4":
			if err := c.session.Close(card); err != nil {
				return false, err
			}
			fmt.Fprintln(c.out, "The account has been closed!")
			return false, nil
		case "5":
			fmt.Fprintln(c.out, "You have successfully logged out!")
			return false, nil
		case "0":
			fmt.Fprintln(c.out, "Bye!")
			return true, nil
		}
	}
}

func (c *CLI) addIncome(card *domain.Card) error {
	fmt.Fprintln(c.out, "Enter income:")
	line, ok := c.readLine()
	if !ok {
		return nil
	}

	amount, err := service.ParseAmount(line)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid amount!")
		return nil
	}

	if err := c.session.Deposit(card, amount); err != nil {
		return c.report(err)
	}
	fmt.Fprintln(c.out, "Income was added!")
	return nil
}

func (c *CLI) transfer(card *domain.Card) error {
	fmt.Fprintln(c.out, "Transfer")
	fmt.Fprintln(c.out, "Enter card number:")
	receiver, ok := c.readLine()
	if !ok {
		return nil
	}

	// Reject a bad card number before asking for an amount.
	if err := c.session.ValidateReceiver(card, receiver); err != nil {
		return c.report(err)
	}

	fmt.Fprintln(c.out, "Enter how much money you want to transfer:")
	line, ok := c.readLine()
	if !ok {
		return nil
	}
	amount, err := service.ParseAmount(line)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid amount!")
		return nil
	}

	if err := c.session.Transfer(card, receiver, amount); err != nil {
		return c.report(err)
	}
	fmt.Fprintln(c.out, "Success")
	return nil
}

// report prints the user-facing message for a business failure and
// returns nil; storage failures are returned unchanged.
func (c *CLI) report(err error) error {
	switch errors.CodeOf(err) {
	case errors.SameAccountTransfer:
		fmt.Fprintln(c.out, "You can't transfer money to the same account!")
	case errors.InvalidCardNumber:
		fmt.Fprintln(c.out, "Probably you made mistake in the card number. Please try again!")
	case errors.ReceiverNotFound:
		fmt.Fprintln(c.out, "Such a card does not exist.")
	case errors.InsufficientFunds:
		fmt.Fprintln(c.out, "Not enough money!")
	case errors.InvalidAmount:
		fmt.Fprintln(c.out, "Invalid amount!")
	default:
		return err
	}
	return nil
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			c.logger.Error("Failed to read input", "error", err)
		}
		return "", false
	}
	return c.in.Text(), true
}
