package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/ohios/kernel"
	"github.com/joshuapare/ohios/kernel/fs"
)

func grammar() []*command {
	return []*command{
		{name: "help", aliases: []string{"/help"}, desc: "Show this help message", run: cmdHelp},
		{name: "run", args: "<name> <size>", minArgs: 2, desc: "Start a process with given memory size", run: cmdRun},
		{name: "kill", args: "<pid>", minArgs: 1, desc: "Terminate process by PID", run: cmdKill},
		{name: "mem", desc: "Show memory usage", run: cmdMem},
		{name: "ps", desc: "List running processes", run: cmdPs},
		{name: "mkdir", args: "<name>", minArgs: 1, desc: "Create directory", run: cmdMkdir},
		{name: "ls", desc: "List directory contents", run: cmdLs},
		{name: "cd", args: "<dirname>", minArgs: 1, desc: "Change directory (.. to go up)", run: cmdCd},
		{name: "pwd", desc: "Print working directory", run: cmdPwd},
		{name: "mkfile", aliases: []string{"mktxtfile"}, args: "<name>", minArgs: 1, desc: "Create a file", run: cmdMkfile},
		{name: "write", args: "<name> <content...>", minArgs: 2, desc: "Write content to file", run: cmdWrite},
		{name: "read", args: "<name>", minArgs: 1, desc: "Read file contents", run: cmdRead},
		{name: "rm", aliases: []string{"del"}, args: "<name>", minArgs: 1, desc: "Remove file or directory", run: cmdRm},
		{name: "clear", desc: "Clear screen", run: cmdClear},
		{name: "exit", aliases: []string{"quit"}, desc: "Exit ohiOS", run: cmdExit},
	}
}

func cmdHelp(d *Dispatcher, _ []string) Result {
	return lines(d.Help()...)
}

func cmdRun(d *Dispatcher, args []string) Result {
	name := args[0]
	size, err := strconv.Atoi(args[1])
	if err != nil {
		return lines(fmt.Sprintf("run: invalid memory size: '%s'", args[1]))
	}
	if size <= 0 {
		return lines("run: memory size must be a positive integer")
	}

	p, err := d.sys.Spawn(name, size)
	if errors.Is(err, kernel.ErrNoMemory) {
		return lines("Not enough memory.")
	} else if err != nil {
		return lines("Error: " + err.Error())
	}
	off, _ := p.Offset()
	return lines(fmt.Sprintf("Started %s (PID %d) at 0x%04x", name, p.PID, off))
}

func cmdKill(d *Dispatcher, args []string) Result {
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		return lines(fmt.Sprintf("kill: invalid pid: '%s'", args[0]))
	}
	if _, err := d.sys.Kill(pid); err != nil {
		return lines(fmt.Sprintf("Process %d not found.", pid))
	}
	return lines(fmt.Sprintf("Process %d terminated.", pid))
}

func cmdMem(d *Dispatcher, _ []string) Result {
	info := d.sys.Memory().Info()
	return lines(fmt.Sprintf("Memory: %d used / %d total / %d free", info.Used, info.Total, info.Free))
}

func cmdPs(d *Dispatcher, _ []string) Result {
	procs := d.sys.Processes().List()
	if len(procs) == 0 {
		return lines("No running processes")
	}
	out := make([]string, 0, len(procs))
	for _, p := range procs {
		off, _ := p.Offset()
		out = append(out, fmt.Sprintf("%d: %s [%dB] @0x%04x", p.PID, p.Name, p.Size, off))
	}
	return lines(out...)
}

func cmdMkdir(d *Dispatcher, args []string) Result {
	name := args[0]
	switch err := d.sys.FS().Mkdir(name); {
	case err == nil:
		return lines(fmt.Sprintf("Directory '%s' created", name))
	case errors.Is(err, fs.ErrInvalidName):
		return lines(fmt.Sprintf("mkdir: cannot create directory '%s': Invalid name", name))
	default:
		return lines(fmt.Sprintf("mkdir: cannot create directory '%s': File exists", name))
	}
}

func cmdLs(d *Dispatcher, _ []string) Result {
	nodes := d.sys.FS().List()
	if len(nodes) == 0 {
		return lines("(empty directory)")
	}
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *fs.Dir:
			out = append(out, "DIR "+n.Name())
		case *fs.File:
			out = append(out, fmt.Sprintf("FILE %s (%dB)", n.Name(), n.Size()))
		}
	}
	return lines(out...)
}

func cmdCd(d *Dispatcher, args []string) Result {
	name := args[0]
	switch err := d.sys.FS().Cd(name); {
	case err == nil:
		return Result{}
	case errors.Is(err, fs.ErrNotDir):
		return lines("cd: not a directory: " + name)
	default:
		return lines("cd: no such file or directory: " + name)
	}
}

func cmdPwd(d *Dispatcher, _ []string) Result {
	return lines(d.sys.FS().Pwd())
}

func cmdMkfile(d *Dispatcher, args []string) Result {
	name := args[0]
	switch err := d.sys.FS().CreateFile(name); {
	case err == nil:
		return lines(fmt.Sprintf("File '%s' created", name))
	case errors.Is(err, fs.ErrInvalidName):
		return lines(fmt.Sprintf("mkfile: cannot create file '%s': Invalid name", name))
	default:
		return lines(fmt.Sprintf("mkfile: cannot create file '%s': File exists", name))
	}
}

func cmdWrite(d *Dispatcher, args []string) Result {
	name := args[0]
	content := strings.Join(args[1:], " ")
	switch err := d.sys.FS().WriteFile(name, []byte(content)); {
	case err == nil:
		return lines(fmt.Sprintf("%d bytes written to '%s'", len(content), name))
	case errors.Is(err, fs.ErrIsDir):
		return lines(fmt.Sprintf("write: cannot write to '%s': Is a directory", name))
	default:
		return lines(fmt.Sprintf("write: cannot write to '%s': No such file", name))
	}
}

func cmdRead(d *Dispatcher, args []string) Result {
	name := args[0]
	content, err := d.sys.FS().ReadFile(name)
	switch {
	case err == nil:
		return lines(string(content))
	case errors.Is(err, fs.ErrIsDir):
		return lines(fmt.Sprintf("read: cannot read '%s': Is a directory", name))
	default:
		return lines(fmt.Sprintf("read: cannot read '%s': No such file or directory", name))
	}
}

func cmdRm(d *Dispatcher, args []string) Result {
	name := args[0]
	if err := d.sys.FS().Delete(name); err != nil {
		return lines(fmt.Sprintf("rm: cannot remove '%s': No such file or directory", name))
	}
	return Result{}
}

func cmdClear(_ *Dispatcher, _ []string) Result {
	return Result{Clear: true}
}

func cmdExit(_ *Dispatcher, _ []string) Result {
	return Result{Lines: []string{"Goodbye!"}, Exit: true}
}
