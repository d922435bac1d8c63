package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/project-board/internal/config"
	"github.com/yukikurage/project-board/internal/repository"
	"github.com/yukikurage/project-board/internal/services"
)

func newUserCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserAddCmd(cfg))
	return cmd
}

func newUserAddCmd(cfg *config.Config) *cobra.Command {
	var input services.CreateUserInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			authService := services.NewAuthService(repository.NewUserRepository(db))
			user, err := authService.CreateUser(input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.LoginID, user.UserName)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.LoginID, "login-id", "", "login id (required)")
	cmd.Flags().StringVar(&input.UserName, "name", "", "display name (defaults to the login id)")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (required)")
	cmd.Flags().BoolVar(&input.Admin, "admin", false, "grant the system admin role")
	_ = cmd.MarkFlagRequired("login-id")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newProjectCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectAddCmd(cfg))
	return cmd
}

func newProjectAddCmd(cfg *config.Config) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectService, err := newProjectService(cfg)
			if err != nil {
				return err
			}

			project, err := projectService.CreateProject(name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %d (%s)\n", project.ID, project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMemberCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage project membership",
	}
	cmd.AddCommand(newMemberAddCmd(cfg))
	return cmd
}

func newMemberAddCmd(cfg *config.Config) *cobra.Command {
	var input services.AddMemberInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user to a project or change their role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectService, err := newProjectService(cfg)
			if err != nil {
				return err
			}

			if err := projectService.AddMember(input); err != nil {
				return err
			}

			role := "member"
			if input.Manager {
				role = "manager"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to project %d as %s\n", input.LoginID, input.ProjectID, role)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&input.ProjectID, "project-id", 0, "project id (required)")
	cmd.Flags().StringVar(&input.LoginID, "login-id", "", "login id (required)")
	cmd.Flags().BoolVar(&input.Manager, "manager", false, "grant the project manager role")
	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("login-id")

	return cmd
}

func newProjectService(cfg *config.Config) (*services.ProjectService, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	return services.NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewTaskRepository(db),
		repository.NewUserRepository(db),
	), nil
}
