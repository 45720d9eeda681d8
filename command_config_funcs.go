package declarg

// WithName sets the name under which the command is matched on the command line
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithAliases sets alternative names under which the command is matched
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Aliases = aliases
	}
}

// WithCommandDescription the description will be used in usage output
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithDefaultSubcommand names the child dispatched into when no positional
// value matches a child name
func WithDefaultSubcommand(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.DefaultSubcommand = name
	}
}

// WithHelpNames overrides the names which trigger a help request for this command
func WithHelpNames(names ...ArgumentName) ConfigureCommandFunc {
	return func(command *Command) {
		command.HelpNames = names
	}
}

// WithCommandHidden omits the command from usage output and completion
func WithCommandHidden(hidden bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.Hidden = hidden
	}
}

// WithArguments appends descriptors to the command's argument set
func WithArguments(arguments ...*Descriptor) ConfigureCommandFunc {
	return func(command *Command) {
		command.Arguments = append(command.Arguments, arguments...)
	}
}

// WithGroups embeds nested option groups in the command's argument set
func WithGroups(groups ...*Group) ConfigureCommandFunc {
	return func(command *Command) {
		command.Groups = append(command.Groups, groups...)
	}
}

// WithSubcommands appends child commands
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.Subcommands = append(command.Subcommands, subcommands...)
	}
}
