package analyzer

import sitter "github.com/smacker/go-tree-sitter"

// Calls returns every call site in the file. Plain calls carry just the
// callee name; calls routed through a receiver carry the receiver expression
// in Object. The caller is the nearest named enclosing function, or
// ModuleScope for top-level code.
func (a *FileAnalyzer) Calls() []CallInfo {
	var out []CallInfo
	for _, m := range a.matches(a.language.Patterns().Call) {
		var callNode, calleeNode, methodNode, objectNode *sitter.Node
		for _, c := range m {
			switch c.name {
			case "call":
				callNode = c.node
			case "callee":
				calleeNode = c.node
			case "method":
				methodNode = c.node
			case "object":
				objectNode = c.node
			}
		}
		if callNode == nil {
			continue
		}

		var callee, object string
		isMethodCall := false
		switch {
		case calleeNode != nil:
			callee = a.text(calleeNode)
		case methodNode != nil:
			callee = a.text(methodNode)
			isMethodCall = true
			if objectNode != nil {
				object = a.text(objectNode)
			}
		}
		if callee == "" {
			continue
		}

		caller := a.enclosingFunction(callNode)
		if caller == "" {
			caller = ModuleScope
		}
		out = append(out, CallInfo{
			Callee:       callee,
			Object:       object,
			IsMethodCall: isMethodCall,
			Caller:       caller,
			Location:     a.location(callNode),
		})
	}
	return out
}
