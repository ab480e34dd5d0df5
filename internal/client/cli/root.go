package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userEmail != "" {
		return fmt.Sprintf("(%s)", a.userEmail)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to InvoTrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("invocli %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, update, businesses, addbusiness, invoices [status], tab <out|received>, ondate <YYYY-MM-DD>, create, logout, delete-account, exit")
			} else {
				fmt.Println("Available commands: login, signup, google, exit")
			}

		case "login":
			a.Login(ctx)
		case "signup":
			a.Signup(ctx)
		case "google":
			a.Google(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "update":
			a.updateProfile(ctx)
		case "delete-account":
			a.deleteAccount(ctx)
		case "businesses":
			a.listBusinesses(ctx)
		case "addbusiness":
			a.addBusiness(ctx)
		case "invoices":
			a.listInvoices(ctx, args)
		case "tab":
			a.switchTab(args)
		case "ondate":
			a.filterOnDate(args)
		case "create":
			a.createInvoice(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
