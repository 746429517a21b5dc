package catalog

import "resumescope/internal/types"

// fieldPrecedence is the fixed classification order. Earlier fields win
// ties, so a resume matching both Data Science and Android keywords is
// always classified Data Science.
var fieldPrecedence = []types.Field{
	types.FieldDataScience,
	types.FieldWeb,
	types.FieldAndroid,
	types.FieldIOS,
	types.FieldUIUX,
}

// fieldKeywords maps each field to its indicator skill keywords.
var fieldKeywords = map[types.Field][]string{
	types.FieldDataScience: {
		"tensorflow", "keras", "pytorch", "machine learning", "deep learning",
		"flask", "streamlit", "python",
	},
	types.FieldWeb: {
		"react", "django", "node js", "react js", "php", "laravel", "magento",
		"wordpress", "javascript", "angular js", "c#", "flask",
	},
	types.FieldAndroid: {
		"android", "android development", "flutter", "kotlin", "xml", "kivy", "java",
	},
	types.FieldIOS: {
		"ios", "ios development", "swift", "cocoa", "cocoa touch", "xcode",
	},
	types.FieldUIUX: {
		"ux", "adobe xd", "figma", "zeplin", "balsamiq", "ui", "prototyping",
		"wireframe", "photoshop", "illustrator",
	},
}

// sectionKeywords maps each tracked section to its detection keywords.
// Matching is plain substring containment on the lower-cased text.
var sectionKeywords = map[types.Section][]string{
	types.SectionObjective:    {"objective", "summary"},
	types.SectionDeclaration:  {"declaration"},
	types.SectionHobbies:      {"hobbies", "interests"},
	types.SectionAchievements: {"achievements", "awards", "certifications"},
	types.SectionProjects:     {"projects", "experience", "work experience"},
}

// recommendedSkills maps each field to the skills suggested to candidates
// classified into it.
var recommendedSkills = map[types.Field][]string{
	types.FieldDataScience: {
		"Data Visualization", "Predictive Analysis", "Statistical Modeling",
		"Data Mining", "Clustering & Classification", "Data Analytics",
		"Quantitative Analysis", "Web Scraping", "ML Algorithms", "Keras",
		"Pytorch", "Probability", "Scikit-learn", "Tensorflow", "Flask", "Streamlit",
	},
	types.FieldWeb: {
		"React", "Django", "Node JS", "React JS", "php", "laravel", "Magento",
		"wordpress", "Javascript", "Angular JS", "c#", "Flask", "SDK",
	},
	types.FieldAndroid: {
		"Android", "Android development", "Flutter", "Kotlin", "XML", "Java",
		"Kivy", "GIT", "SDK", "SQLite",
	},
	types.FieldIOS: {
		"IOS", "IOS Development", "Swift", "Cocoa", "Cocoa Touch", "Xcode",
		"Objective-C", "SQLite", "Plist", "StoreKit", "UI-Kit", "AV Foundation",
		"Auto-Layout",
	},
	types.FieldUIUX: {
		"UI", "User Experience", "Adobe XD", "Figma", "Zeplin", "Balsamiq",
		"Prototyping", "Wireframes", "Storyframes", "Adobe Photoshop", "Editing",
		"Illustrator", "After Effects", "Premier Pro", "Indesign",
	},
}

// defaultCourses holds the built-in course catalog per field.
var defaultCourses = map[types.Field][]types.CourseEntry{
	types.FieldDataScience: {
		{Name: "Machine Learning Crash Course by Google [Free]", Link: "https://developers.google.com/machine-learning/crash-course"},
		{Name: "Machine Learning A-Z by Udemy", Link: "https://www.udemy.com/course/machinelearning/"},
		{Name: "Machine Learning by Andrew NG", Link: "https://www.coursera.org/learn/machine-learning"},
		{Name: "Data Scientist Master Program of Simplilearn (IBM)", Link: "https://www.simplilearn.com/big-data-and-analytics/senior-data-scientist-masters-program-training"},
		{Name: "Data Science Foundations: Fundamentals by LinkedIn", Link: "https://www.linkedin.com/learning/data-science-foundations-fundamentals-5"},
		{Name: "Data Scientist with Python", Link: "https://www.datacamp.com/tracks/data-scientist-with-python"},
		{Name: "Programming for Data Science with Python", Link: "https://www.udacity.com/course/programming-for-data-science-nanodegree--nd104"},
		{Name: "Programming for Data Science with R", Link: "https://www.udacity.com/course/programming-for-data-science-nanodegree-with-R--nd118"},
		{Name: "Introduction to Data Science", Link: "https://www.udacity.com/course/introduction-to-data-science--cd0017"},
		{Name: "Intro to Machine Learning with TensorFlow", Link: "https://www.udacity.com/course/intro-to-machine-learning-with-tensorflow-nanodegree--nd230"},
	},
	types.FieldWeb: {
		{Name: "Django Crash course [Free]", Link: "https://youtu.be/e1IyzVyrLSU"},
		{Name: "Python and Django Full Stack Web Developer Bootcamp", Link: "https://www.udemy.com/course/python-and-django-full-stack-web-developer-bootcamp"},
		{Name: "React Crash Course [Free]", Link: "https://youtu.be/Dorf8i6lCuk"},
		{Name: "ReactJS Project Development Training", Link: "https://www.dotnettricks.com/training/masters-program/reactjs-certification-training"},
		{Name: "Full Stack Web Developer - MEAN Stack", Link: "https://www.simplilearn.com/full-stack-web-developer-mean-stack-certification-training"},
		{Name: "Node.js and Express.js [Free]", Link: "https://youtu.be/Oe421EPjeBE"},
		{Name: "Flask: Develop Web Applications in Python", Link: "https://www.educative.io/courses/flask-develop-web-applications-in-python"},
		{Name: "Full Stack Web Developer by Udacity", Link: "https://www.udacity.com/course/full-stack-web-developer-nanodegree--nd0044"},
		{Name: "Front End Web Developer by Udacity", Link: "https://www.udacity.com/course/front-end-web-developer-nanodegree--nd0011"},
		{Name: "Become a React Developer by Udacity", Link: "https://www.udacity.com/course/react-nanodegree--nd019"},
	},
	types.FieldAndroid: {
		{Name: "Android Development for Beginners [Free]", Link: "https://youtu.be/fis26HvvDII"},
		{Name: "Android App Development Specialization", Link: "https://www.coursera.org/specializations/android-app-development"},
		{Name: "Associate Android Developer Certification", Link: "https://grow.google/androiddev/#?modal_active=none"},
		{Name: "Become an Android Kotlin Developer by Udacity", Link: "https://www.udacity.com/course/android-kotlin-developer-nanodegree--nd940"},
		{Name: "Android Basics by Google", Link: "https://www.udacity.com/course/android-basics-nanodegree-by-google--nd803"},
		{Name: "The Complete Android Developer Course", Link: "https://www.udemy.com/course/complete-android-n-developer-course/"},
		{Name: "Building an Android App with Architecture Components", Link: "https://www.linkedin.com/learning/building-an-android-app-with-architecture-components"},
		{Name: "Android App Development Master Class with Flutter", Link: "https://www.udemy.com/course/android-app-development-master-class-with-flutter/"},
		{Name: "Flutter & Dart - The Complete Flutter App Development Course", Link: "https://www.udemy.com/course/flutter-dart-the-complete-flutter-app-development-course/"},
		{Name: "Flutter App Development Course [Free]", Link: "https://youtu.be/rZLR5olMR64"},
	},
	types.FieldIOS: {
		{Name: "IOS App Development by LinkedIn", Link: "https://www.linkedin.com/learning/subscription/topics/ios"},
		{Name: "iOS & Swift - The Complete iOS App Development Bootcamp", Link: "https://www.udemy.com/course/ios-13-app-development-bootcamp/"},
		{Name: "Become an iOS Developer", Link: "https://www.udacity.com/course/ios-developer-nanodegree--nd003"},
		{Name: "iOS App Development with Swift Specialization", Link: "https://www.coursera.org/specializations/app-development"},
		{Name: "Mobile App Development with Swift", Link: "https://www.edx.org/professional-certificate/curtinx-mobile-app-development-with-swift"},
		{Name: "Swift Course by LinkedIn", Link: "https://www.linkedin.com/learning/subscription/topics/swift-2"},
		{Name: "Objective-C Crash Course for Swift Developers", Link: "https://www.udemy.com/course/objectivec/"},
		{Name: "Learn Swift by Codecademy", Link: "https://www.codecademy.com/learn/learn-swift"},
		{Name: "Swift Tutorial - Full Course for Beginners [Free]", Link: "https://youtu.be/comQ1-x2a1Q"},
		{Name: "Learn Swift Fast [Free]", Link: "https://youtu.be/FcsY1YPBwzQ"},
	},
	types.FieldUIUX: {
		{Name: "Google UX Design Professional Certificate", Link: "https://www.coursera.org/professional-certificates/google-ux-design"},
		{Name: "UI / UX Design Specialization", Link: "https://www.coursera.org/specializations/ui-ux-design"},
		{Name: "The Complete App Design Course - UX, UI and Design Thinking", Link: "https://www.udemy.com/course/the-complete-app-design-course-ux-and-ui-design/"},
		{Name: "UX & Web Design Master Course: Strategy, Design, Development", Link: "https://www.udemy.com/course/ux-web-design-master-course-strategy-design-development/"},
		{Name: "The Complete App Design Course - UX, UI and Design Thinking", Link: "https://www.udemy.com/course/graphic-design-ui-ux-design-figma/"},
		{Name: "DESIGN RULES: Principles + Practices for Great UI Design", Link: "https://www.udemy.com/course/design-rules/"},
		{Name: "Become a UX Designer by Udacity", Link: "https://www.udacity.com/course/ux-designer-nanodegree--nd578"},
		{Name: "Adobe XD Tutorial: User Experience Design Course [Free]", Link: "https://youtu.be/68w2VwalD5w"},
		{Name: "Adobe XD for Beginners [Free]", Link: "https://youtu.be/WEljsc2jorI"},
		{Name: "Adobe XD in Simple Way", Link: "https://learnux.io/course/adobe-xd"},
	},
}

// defaultResumeVideos is the built-in resume-writing tips pool.
var defaultResumeVideos = []types.VideoEntry{
	{Title: "Resume Writing Tips", Link: "https://youtu.be/y8YH0Qbu5h4"},
	{Title: "How To Write A Resume With Little or No Work Experience", Link: "https://youtu.be/J-4Fv8nq1C4"},
	{Title: "8 Tips for Writing a Winning Resume", Link: "https://youtu.be/yp693O87GmM"},
	{Title: "How To Make a Resume For Freshers", Link: "https://youtu.be/GyjzOKdaioU"},
	{Title: "How to Get Your Resume Noticed by Employers in 5 Seconds", Link: "https://youtu.be/17YZBH_qtmg"},
	{Title: "The Resume That Got Me Into Google", Link: "https://youtu.be/aKjsy-b00QM"},
}

// defaultInterviewVideos is the built-in interview-prep tips pool.
var defaultInterviewVideos = []types.VideoEntry{
	{Title: "Interview Tips - How to Introduce Yourself", Link: "https://youtu.be/Ji46s5BHdr0"},
	{Title: "Tell Me About Yourself - A Good Answer", Link: "https://youtu.be/seVxXHi2YMs"},
	{Title: "Top 6 Common Interview Questions and Answers", Link: "https://youtu.be/9FgfsLa_SmY"},
	{Title: "5 Things You Should Not Say in a Job Interview", Link: "https://youtu.be/OW-yxxPscPE"},
	{Title: "How to Ace an Online Job Interview", Link: "https://youtu.be/HBmkmUiMVPY"},
	{Title: "Common Interview Questions and Answers", Link: "https://youtu.be/KukmClH1KoA"},
}
